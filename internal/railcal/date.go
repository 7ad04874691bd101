// Package railcal implements the railway accounting calendar: a 52/53-week
// year that begins on the Saturday on or before March 31, divided into up
// to 13 four-week periods.
package railcal

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates (ISO 8601 date only).
const DateLayout = "2006-01-02"

// ErrInvalidDate is returned when a date's components do not form a real
// calendar day (e.g. February 30). Malformed dates are rejected, never
// normalized.
var ErrInvalidDate = errors.New("invalid calendar date")

// NewDate builds a calendar date at UTC midnight. Unlike time.Date it does
// not roll overflowing components into the next month.
func NewDate(year int, month time.Month, day int) (time.Time, error) {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if d.Year() != year || d.Month() != month || d.Day() != day {
		return time.Time{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, month, day)
	}
	return d, nil
}

// ParseDate parses a YYYY-MM-DD string into a calendar date at UTC midnight.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return d, nil
}

// FormatDate renders a date as YYYY-MM-DD.
func FormatDate(d time.Time) string {
	return d.Format(DateLayout)
}

// Midnight truncates a date to UTC midnight. All calendar arithmetic in
// this package assumes dates at UTC midnight; callers passing timestamps
// are normalized here so day differences stay exact.
func Midnight(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the whole days from a to b. Both arguments must be
// at UTC midnight.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
