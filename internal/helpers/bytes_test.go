package helpers

import "testing"

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name  string
		input int64
		want  string
	}{
		{"zero", 0, "0 B"},
		{"whole bytes", 500, "500 B"},
		{"just under a kilobyte", 1023, "1023 B"},
		{"exactly one kilobyte", 1024, "1.00 KB"},
		{"kilobytes", 2048, "2.00 KB"},
		{"fractional kilobytes", 1536, "1.50 KB"},
		{"megabytes", 5_242_880, "5.00 MB"},
		{"gigabytes", 1 << 30, "1.00 GB"},
		{"terabytes", 1 << 40, "1.00 TB"},
		{"beyond terabytes stays in TB", 1 << 41, "2.00 TB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatBytes(tt.input); got != tt.want {
				t.Errorf("FormatBytes(%d) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
