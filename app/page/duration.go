package page

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatDuration converts a raw itunes:duration value into a short
// human-readable form ("1h 2m" or "45m"). Feeds carry durations as
// "HH:MM:SS", "MM:SS" or a plain seconds count; anything else is
// reported as not ok and the caller omits the duration entirely.
// Seconds are parsed for validation but never shown.
func FormatDuration(raw string) (string, bool) {
	if raw == "" {
		return "", false
	}

	if strings.Contains(raw, ":") {
		parts := strings.Split(raw, ":")
		switch len(parts) {
		case 3:
			hours, err1 := strconv.Atoi(parts[0])
			mins, err2 := strconv.Atoi(parts[1])
			_, err3 := strconv.Atoi(parts[2])
			if err1 != nil || err2 != nil || err3 != nil {
				return "", false
			}
			if hours > 0 {
				return fmt.Sprintf("%dh %dm", hours, mins), true
			}
			return fmt.Sprintf("%dm", mins), true
		case 2:
			mins, err1 := strconv.Atoi(parts[0])
			_, err2 := strconv.Atoi(parts[1])
			if err1 != nil || err2 != nil {
				return "", false
			}
			return fmt.Sprintf("%dm", mins), true
		default:
			return "", false
		}
	}

	totalSeconds, err := strconv.Atoi(raw)
	if err != nil {
		return "", false
	}

	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes), true
	}
	return fmt.Sprintf("%dm", minutes), true
}
