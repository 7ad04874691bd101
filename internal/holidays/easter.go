// Package holidays generates the annual table of UK bank holidays and
// observances, anchored on an exact Easter computation.
package holidays

import "time"

// EasterSunday calculates the date of Easter Sunday for a given year
// using the anonymous Gregorian computus (Meeus/Jones/Butcher).
//
// The algorithm is integer-only and exact for all years in the Gregorian
// calendar.
func EasterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// AdventSunday calculates the fourth Sunday before Christmas for a given
// year, which falls between November 27 and December 3.
func AdventSunday(year int) time.Time {
	christmas := time.Date(year, time.December, 25, 0, 0, 0, 0, time.UTC)

	// The Sunday strictly before Christmas, then three more weeks back.
	wd := int(christmas.Weekday())
	if wd == 0 {
		wd = 7
	}
	return christmas.AddDate(0, 0, -wd-21)
}
