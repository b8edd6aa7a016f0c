package logdeck

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mekvam/logdeck/internal/config"
	"github.com/mekvam/logdeck/internal/console"
	"github.com/mekvam/logdeck/internal/logging"
	"github.com/spf13/cobra"
)

func ConsoleCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "console",
		Short: "Open the interactive console (default command)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsole(flags)
		},
	}
}

func runConsole(flags *rootFlags) error {
	client, cc, err := newClient(flags)
	if err != nil {
		return err
	}

	archiveDir, err := config.ResolveArchiveDir(cc)
	if err != nil {
		return err
	}

	model := console.New(client, archiveDir, logging.NewDebugLogger())
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("console exited with error: %w", err)
	}
	return nil
}
