package utils

import "fmt"

// FormatDuration renders a duration in seconds as "MM:SS", or "HH:MM:SS" for
// tracks an hour or longer. Non-positive durations yield an empty string so
// callers never emit a fabricated value.
func FormatDuration(seconds int) string {
	if seconds <= 0 {
		return ""
	}

	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}

// ParseClockDuration converts a "M:SS" / "H:MM:SS" display string into
// seconds. Returns 0 when the string is not a clock duration.
func ParseClockDuration(s string) int {
	var h, m, sec int
	if n, err := fmt.Sscanf(s, "%d:%d:%d", &h, &m, &sec); err == nil && n == 3 {
		return h*3600 + m*60 + sec
	}
	if n, err := fmt.Sscanf(s, "%d:%d", &m, &sec); err == nil && n == 2 {
		return m*60 + sec
	}
	return 0
}
