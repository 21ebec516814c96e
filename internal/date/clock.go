package date

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	maxHour   = 23
	maxMinute = 59
	noon      = 12
)

// Time is a time of day with minute precision.
type Time struct {
	hour   int
	minute int
}

// NewTime validates hour and minute and returns the Time.
func NewTime(hour, minute int) (Time, error) {
	input := fmt.Sprintf("%d:%02d", hour, minute)
	if hour < 0 || hour > maxHour {
		return Time{}, newError(KindInvalidHour, input)
	}
	if minute < 0 || minute > maxMinute {
		return Time{}, newError(KindInvalidMinute, input)
	}
	return Time{hour: hour, minute: minute}, nil
}

// ParseTime parses an HH:MM string into a Time.
func ParseTime(s string) (Time, error) {
	fields := strings.Split(s, ":")
	if len(fields) != 2 { //nolint:mnd // hour, minute
		return Time{}, newError(KindUnspecifiedTime, s)
	}

	hour, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil || hour < 0 || hour > maxHour {
		return Time{}, newError(KindInvalidHour, s)
	}
	minute, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil || minute < 0 || minute > maxMinute {
		return Time{}, newError(KindInvalidMinute, s)
	}

	return Time{hour: hour, minute: minute}, nil
}

// Hour returns the hour (0-23).
func (t Time) Hour() int { return t.hour }

// Minute returns the minute (0-59).
func (t Time) Minute() int { return t.minute }

// Format24 returns the time as zero-padded "HH:MM".
func (t Time) Format24() string {
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}

// Format12 returns the time as "H:MM AM" or "H:MM PM".
// Hours from 12 report PM and hours past 12 are reduced by 12. Midnight
// keeps its hour digit and renders as "0:MM AM".
func (t Time) Format12() string {
	hour, suffix := t.hour, "AM"
	if hour >= noon {
		suffix = "PM"
	}
	if hour > noon {
		hour -= noon
	}
	return fmt.Sprintf("%d:%02d %s", hour, t.minute, suffix)
}

// String returns the 24-hour form, which ParseTime accepts.
func (t Time) String() string { return t.Format24() }

// MarshalText implements encoding.TextMarshaler.
func (t Time) MarshalText() ([]byte, error) {
	return []byte(t.Format24()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Time) UnmarshalText(text []byte) error {
	parsed, err := ParseTime(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
