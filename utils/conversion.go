package utils

import (
	"fmt"
	"strings"
)

// TimeToMinutes parses an "HH:MM" wall-clock value into minutes since
// midnight. "24:00" is accepted because it is a valid exclusive interval end.
func TimeToMinutes(t string) (int, error) {
	parts := strings.Split(t, ":")
	if len(parts) != 2 || len(parts[0]) == 0 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("invalid time %q: want HH:MM", t)
	}
	var h, m int
	if _, err := fmt.Sscanf(t, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid time %q: %v", t, err)
	}
	if h < 0 || h > 24 || m < 0 || m > 59 || (h == 24 && m != 0) {
		return 0, fmt.Errorf("time %q out of range", t)
	}
	return h*60 + m, nil
}

// MinutesToTime renders minutes since midnight as "HH:MM". 1440 renders as
// "24:00", the exclusive end of the day.
func MinutesToTime(mins int) string {
	return fmt.Sprintf("%02d:%02d", mins/60, mins%60)
}

// NormalizeSecret applies the one canonical normalization for cancellation
// secrets: trim surrounding whitespace and case-fold. It must be used both
// when a booking is created and when a cancellation is verified; comparing a
// normalized side against a raw side is how secrets silently stop matching.
func NormalizeSecret(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
