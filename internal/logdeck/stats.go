package logdeck

import (
	"context"
	"fmt"

	"github.com/mekvam/logdeck/internal/helpers"
	"github.com/mekvam/logdeck/internal/ui"
	"github.com/spf13/cobra"
)

func StatsCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show size and retention cap for a log stream",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stream, err := streamFromFlags(flags)
			if err != nil {
				return err
			}
			client, _, err := newClient(flags)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), defaultContextTimeout)
			defer cancel()

			stats, err := client.Stats(ctx, stream)
			if err != nil {
				return fmt.Errorf("failed to fetch %s stats: %w", stream, err)
			}

			fmt.Printf("Size: %s / %s\n",
				helpers.FormatBytes(stats.Size),
				helpers.FormatBytes(stats.MaxSize))
			if stats.Size >= stats.MaxSize {
				ui.Error("The %s log is at capacity; archive it to free space.", stream)
			}
			return nil
		},
	}
}
