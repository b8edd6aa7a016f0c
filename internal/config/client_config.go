package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/mekvam/logdeck/internal/constants"
	"github.com/mekvam/logdeck/internal/helpers"
	"gopkg.in/yaml.v3"
)

const DefaultRequestTimeout = 30 * time.Second

// ClientConfig holds the operator-side settings for talking to the log
// service. All fields are optional; flags and environment variables take
// precedence over the file.
type ClientConfig struct {
	Server     string `json:"server" yaml:"server" toml:"server"`
	ArchiveDir string `json:"archiveDir" yaml:"archiveDir" toml:"archiveDir"`
	Timeout    string `json:"timeout" yaml:"timeout" toml:"timeout"`
}

// RequestTimeout parses the configured timeout, falling back to the default
// on empty or malformed values.
func (cc *ClientConfig) RequestTimeout() time.Duration {
	if cc == nil || cc.Timeout == "" {
		return DefaultRequestTimeout
	}
	d, err := time.ParseDuration(cc.Timeout)
	if err != nil || d <= 0 {
		return DefaultRequestTimeout
	}
	return d
}

// LoadClientConfig reads the config file at path. A missing file is not an
// error; it returns (nil, nil) so callers fall back to defaults.
func LoadClientConfig(path string) (*ClientConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	format, err := getConfigFormat(path)
	if err != nil {
		return nil, err
	}

	parser, err := getConfigParser(format)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, fmt.Errorf("failed to load client config file: %w", err)
	}

	var clientConfig ClientConfig
	if err := k.UnmarshalWithConf("", &clientConfig, koanf.UnmarshalConf{Tag: format}); err != nil {
		return nil, fmt.Errorf("failed to unmarshal client config: %w", err)
	}
	return &clientConfig, nil
}

func (cc *ClientConfig) Save(path string) error {
	data, err := yaml.Marshal(cc)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(path, data, constants.ModeFileDefault)
}

// ResolveServerURL picks the server address in priority order: explicit flag,
// LOGDECK_SERVER, config file, built-in default. The result is normalized.
func ResolveServerURL(flagValue string, cc *ClientConfig) (string, error) {
	raw := flagValue
	if raw == "" {
		raw = os.Getenv(constants.EnvVarServer)
	}
	if raw == "" && cc != nil {
		raw = cc.Server
	}
	if raw == "" {
		raw = constants.DefaultServerURL
	}
	return helpers.NormalizeServerURL(raw)
}

// ResolveArchiveDir returns the directory archives are written to: the
// configured one (created if needed) or the current working directory.
func ResolveArchiveDir(cc *ClientConfig) (string, error) {
	if cc == nil || cc.ArchiveDir == "" {
		return os.Getwd()
	}
	dir := cc.ArchiveDir
	if expanded, err := expandHome(dir); err == nil {
		dir = expanded
	}
	if err := os.MkdirAll(dir, constants.ModeDirPrivate); err != nil {
		return "", fmt.Errorf("failed to create archive dir '%s': %w", dir, err)
	}
	return dir, nil
}

// DefaultClientConfigPath returns the path the config file is looked up at.
func DefaultClientConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, constants.ClientConfigFileName), nil
}
