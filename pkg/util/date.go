package util

import (
	"fmt"
	"time"
)

// ParseClock parses a wall-clock "HH:MM" string into hour and minute.
func ParseClock(s string) (hour, minute int, err error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, 0, fmt.Errorf("parse clock %q: %w", s, err)
	}
	return t.Hour(), t.Minute(), nil
}

// FormatLongDate renders a calendar date for digest headers, e.g. "Friday, March 07 2025".
func FormatLongDate(t time.Time) string {
	return t.Format("Monday, January 02 2006")
}

// FormatClock renders wall-clock time, e.g. "09:30".
func FormatClock(t time.Time) string {
	return t.Format("15:04")
}

// FormatClockZone renders wall-clock time with the zone abbreviation, e.g. "09:30 JST".
func FormatClockZone(t time.Time) string {
	return t.Format("15:04 MST")
}
