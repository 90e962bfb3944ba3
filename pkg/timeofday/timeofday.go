// Package timeofday converts wall-clock "HH:MM" strings to minute-of-day
// offsets and back. All schedule comparisons operate on the integer form.
package timeofday

import (
	"fmt"

	appErrors "github.com/noah-isme/tutor-classes-api/pkg/errors"
)

const (
	// MinutesPerDay is the number of distinct minute-of-day values.
	MinutesPerDay = 24 * 60
	// MaxMinute is the last valid minute of a day (23:59).
	MaxMinute = MinutesPerDay - 1
)

// Encode parses a strict zero-padded 24-hour "HH:MM" string into hour*60+minute.
func Encode(value string) (int, error) {
	if len(value) != 5 || value[2] != ':' {
		return 0, appErrors.Clone(appErrors.ErrInvalidTimeFormat, fmt.Sprintf("invalid time %q, expected HH:MM", value))
	}
	hour, okHour := twoDigits(value[0], value[1])
	minute, okMinute := twoDigits(value[3], value[4])
	if !okHour || !okMinute || hour > 23 || minute > 59 {
		return 0, appErrors.Clone(appErrors.ErrInvalidTimeFormat, fmt.Sprintf("invalid time %q, expected HH:MM", value))
	}
	return hour*60 + minute, nil
}

// Decode renders a minute-of-day as zero-padded "HH:MM".
func Decode(minutes int) (string, error) {
	if minutes < 0 || minutes > MaxMinute {
		return "", appErrors.Clone(appErrors.ErrTimeOutOfRange, fmt.Sprintf("minute of day %d out of range [0,%d]", minutes, MaxMinute))
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60), nil
}

// MustDecode is Decode for values already known to be in range.
func MustDecode(minutes int) string {
	s, err := Decode(minutes)
	if err != nil {
		panic(err)
	}
	return s
}

func twoDigits(hi, lo byte) (int, bool) {
	if hi < '0' || hi > '9' || lo < '0' || lo > '9' {
		return 0, false
	}
	return int(hi-'0')*10 + int(lo-'0'), true
}
