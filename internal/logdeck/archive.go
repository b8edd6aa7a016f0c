package logdeck

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mekvam/logdeck/internal/apiclient"
	"github.com/mekvam/logdeck/internal/config"
	"github.com/mekvam/logdeck/internal/ui"
	"github.com/spf13/cobra"
)

func ArchiveCmd(flags *rootFlags) *cobra.Command {
	var skipConfirm bool

	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Download a log stream and clear it on the server",
		Long:  "Downloads the stream's current log file and truncates it server-side. The download and the truncation are a single server operation; there is no way to do one without the other.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stream, err := streamFromFlags(flags)
			if err != nil {
				return err
			}

			if !skipConfirm {
				fmt.Fprintf(os.Stderr, "Archive and clear the %s log? [y/N]: ", stream.Label())
				answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
				if err != nil {
					return fmt.Errorf("failed to read confirmation: %w", err)
				}
				if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
					ui.Info("Aborted.")
					return nil
				}
			}

			client, cc, err := newClient(flags)
			if err != nil {
				return err
			}
			archiveDir, err := config.ResolveArchiveDir(cc)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), defaultContextTimeout)
			defer cancel()

			path, err := client.Archive(ctx, stream, archiveDir)
			if errors.Is(err, apiclient.ErrNoLogFile) {
				ui.Info("No %s log file to archive.", stream)
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to archive %s log: %w", stream, err)
			}

			ui.Success("Archived %s log to %s", stream, path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
