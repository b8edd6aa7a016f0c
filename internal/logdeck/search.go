package logdeck

import (
	"context"
	"fmt"

	"github.com/mekvam/logdeck/internal/constants"
	"github.com/mekvam/logdeck/internal/ui"
	"github.com/spf13/cobra"
)

func SearchCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "search <term>",
		Short: fmt.Sprintf("Search a log stream (the server returns at most %d matches)", constants.SearchResultCap),
		Args:  cobra.ExactArgs(1),
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

			resp, err := client.Search(ctx, stream, args[0])
			if err != nil {
				return fmt.Errorf("search failed: %w", err)
			}

			if resp.Count == 0 || len(resp.Results) == 0 {
				ui.Info("No matches found in the %s log.", stream)
				return nil
			}

			label := fmt.Sprintf("%d Matches", resp.Count)
			if resp.Count == 1 {
				label = "1 Match"
			}
			ui.Success("%s", label)
			for _, line := range resp.Results {
				fmt.Println(line)
			}
			return nil
		},
	}
}
