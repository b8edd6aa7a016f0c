package helpers

import "fmt"

// FormatBytes renders a byte count for the stats line. Values under 1 KB are
// shown as whole bytes; everything above picks the largest unit where the
// scaled value is at least 1, with two decimals.
func FormatBytes(n int64) string {
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}

	v := float64(n) / 1024
	for _, unit := range []string{"KB", "MB", "GB"} {
		if v < 1024 {
			return fmt.Sprintf("%.2f %s", v, unit)
		}
		v /= 1024
	}
	return fmt.Sprintf("%.2f TB", v)
}
