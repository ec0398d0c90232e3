package utils

import "time"

// IsValidTimeOfDay reports whether s is a well-formed "HH:MM"
// time-of-day string. The fixed zero-padded format keeps
// lexicographic comparison equivalent to chronological comparison.
func IsValidTimeOfDay(s string) bool {
	if len(s) != 5 {
		return false
	}
	_, err := time.Parse("15:04", s)
	return err == nil
}
