package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/mekvam/logdeck/internal/constants"
)

func ensureDir(dirPath string) error {
	return os.MkdirAll(dirPath, constants.ModeDirPrivate)
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[2:]), nil
}

// ConfigDir returns the logdeck configuration directory, creating it if
// needed. LOGDECK_CONFIG_DIR overrides the default ~/.config/logdeck.
func ConfigDir() (string, error) {
	if envPath, ok := os.LookupEnv(constants.EnvVarConfigDir); ok && envPath != "" {
		expanded, err := expandHome(envPath)
		if err != nil {
			return "", err
		}
		if err := ensureDir(expanded); err != nil {
			return "", err
		}
		return expanded, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	path := filepath.Join(home, ".config", "logdeck")
	if err := ensureDir(path); err != nil {
		return "", err
	}
	return path, nil
}
