package constants

import "os"

const (
	Version = "0.1.0"

	// Default URL for the log service. The service listens on 1500 when run
	// locally without an explicit port.
	DefaultServerURL = "http://localhost:1500"

	// Environment variables
	EnvVarServer    = "LOGDECK_SERVER"
	EnvVarConfigDir = "LOGDECK_CONFIG_DIR"
	EnvVarDebugLog  = "LOGDECK_DEBUG"

	// File names
	ClientConfigFileName = "config.yaml"
	ConfigEnvFileName    = ".env"

	// Timestamp layout used for fallback archive file names.
	ArchiveTimestampLayout = "20060102_150405"

	// The server caps search responses at this many matches. The client does
	// no capping of its own; the number is only surfaced in help text.
	SearchResultCap = 1000
)

// File and directory permissions
const (
	ModeFileDefault os.FileMode = 0o644 // non-secret configs, archives
	ModeDirPrivate  os.FileMode = 0o700 // private dirs
)
