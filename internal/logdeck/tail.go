package logdeck

import (
	"context"
	"errors"
	"fmt"

	"github.com/mekvam/logdeck/internal/apiclient"
	"github.com/mekvam/logdeck/internal/ui"
	"github.com/spf13/cobra"
)

func TailCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tail",
		Short: "Print the current content of a log stream",
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

			content, err := client.Tail(ctx, stream)
			if errors.Is(err, apiclient.ErrNoLogFile) {
				ui.Info("No %s log file yet.", stream)
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to fetch %s log: %w", stream, err)
			}

			if content == "" {
				ui.Dim("(%s log is empty)", stream)
				return nil
			}
			fmt.Print(content)
			return nil
		},
	}
}
