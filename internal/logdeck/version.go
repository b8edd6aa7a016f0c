package logdeck

import (
	"fmt"

	"github.com/mekvam/logdeck/internal/constants"
	"github.com/spf13/cobra"
)

func VersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the current version of logdeck",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("logdeck %s\n", constants.Version)
		},
	}
}
