package helpers

import "strings"

// SanitizeFilename strips characters unsuitable for local file names from a
// server-provided name (e.g. a Content-Disposition filename). Allows
// alphanumeric characters, hyphen, underscore and dot.
func SanitizeFilename(name string) string {
	if name == "" {
		return ""
	}
	var result strings.Builder
	result.Grow(len(name))

	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') ||
			r == '-' || r == '_' || r == '.' {
			result.WriteRune(r)
		} else {
			result.WriteRune('_')
		}
	}
	return result.String()
}
