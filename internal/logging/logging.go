package logging

import (
	"os"

	"github.com/mekvam/logdeck/internal/constants"
	"github.com/rs/zerolog"
)

// NewDebugLogger returns a logger for the full-screen console. The TUI owns
// stdout, so debug output goes to the file named by LOGDECK_DEBUG; when the
// variable is unset everything is discarded.
func NewDebugLogger() zerolog.Logger {
	path := os.Getenv(constants.EnvVarDebugLog)
	if path == "" {
		return zerolog.Nop()
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, constants.ModeFileDefault)
	if err != nil {
		return zerolog.Nop()
	}
	return zerolog.New(f).With().Timestamp().Logger().Level(zerolog.DebugLevel)
}
