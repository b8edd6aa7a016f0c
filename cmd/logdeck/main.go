package main

import (
	"fmt"
	"os"

	"github.com/mekvam/logdeck/internal/logdeck"
)

func main() {
	rootCmd := logdeck.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Print error once, then exit
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
