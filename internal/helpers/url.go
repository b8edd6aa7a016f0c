package helpers

import (
	"fmt"
	"net/url"
	"strings"
)

// NormalizeServerURL validates a server address and returns it in canonical
// form: explicit scheme, no trailing slash. A bare host defaults to http.
func NormalizeServerURL(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("server URL is empty")
	}

	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("invalid server URL '%s': %w", raw, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme '%s' in server URL", parsed.Scheme)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("server URL '%s' has no host", raw)
	}

	return strings.TrimRight(parsed.String(), "/"), nil
}
