package logdeck

import (
	"github.com/mekvam/logdeck/internal/config"
	"github.com/spf13/cobra"
)

// rootFlags holds the values for flags shared by all commands.
type rootFlags struct {
	server string
	stream string
}

func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "logdeck",
		Short: "logdeck is an operator console for the log service's request and error streams",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnvFiles() // load environment variables in .env for all commands.
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsole(flags)
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.PersistentFlags().StringVarP(&flags.server, "server", "s", "", "Log service URL (default: LOGDECK_SERVER, config file, or "+"http://localhost:1500)")
	cmd.PersistentFlags().StringVarP(&flags.stream, "stream", "t", "requests", "Log stream: requests or errors")

	cmd.AddCommand(
		ConsoleCmd(flags),
		TailCmd(flags),
		StatsCmd(flags),
		SearchCmd(flags),
		ArchiveCmd(flags),
		VersionCmd(),
		CompletionCmd(),
	)

	return cmd
}
