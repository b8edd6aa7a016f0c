package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/v2"
)

// getConfigFormat maps a file extension to the struct tag used when
// unmarshalling with koanf.
func getConfigFormat(configFile string) (string, error) {
	ext := strings.ToLower(filepath.Ext(configFile))
	switch ext {
	case ".json":
		return "json", nil
	case ".yaml", ".yml":
		return "yaml", nil
	case ".toml":
		return "toml", nil
	default:
		return "", fmt.Errorf("unsupported config file type: %s", ext)
	}
}

func getConfigParser(format string) (koanf.Parser, error) {
	switch format {
	case "json":
		return json.Parser(), nil
	case "yaml":
		return yaml.Parser(), nil
	case "toml":
		return toml.Parser(), nil
	default:
		return nil, fmt.Errorf("unsupported config format: %s", format)
	}
}
