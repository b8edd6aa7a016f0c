package helpers

import "testing"

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty string", "", ""},
		{"archive name", "requests_archive_20250101_120000.log", "requests_archive_20250101_120000.log"},
		{"path separators", "../../etc/passwd", ".._.._etc_passwd"},
		{"spaces and quotes", `my "log" file.log`, "my__log__file.log"},
		{"alphanumeric", "abc123XYZ", "abc123XYZ"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeFilename(tt.input); got != tt.want {
				t.Errorf("SanitizeFilename() = %v, want %v", got, tt.want)
			}
		})
	}
}
