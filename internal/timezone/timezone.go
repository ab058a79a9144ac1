package timezone

import (
	"strings"
	"time"
)

const (
	DefaultTimezone = "UTC"

	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location resolves tz, falling back to DefaultTimezone.
func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return time.UTC
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// ParseDate parses a YYYY-MM-DD calendar date in tz. A full RFC 3339
// timestamp is accepted too and truncated to its date.
func ParseDate(tz, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	loc := Location(tz)
	if d, err := time.ParseInLocation(DateLayout, value, loc); err == nil {
		return d, nil
	}
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}
	ts = ts.In(loc)
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, loc), nil
}

// ParseClock validates an HH:MM wall-clock time and returns it normalized.
func ParseClock(value string) (string, error) {
	t, err := time.Parse(ClockLayout, strings.TrimSpace(value))
	if err != nil {
		return "", err
	}
	return t.Format(ClockLayout), nil
}
