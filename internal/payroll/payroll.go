// Package payroll computes membership in a recurring payday cycle
// anchored to a fixed reference payday.
//
// A single global schedule is assumed; concurrent schedules with
// different anchors are a documented limitation, not a defect.
package payroll

import "time"

// Schedule defines a recurring payday cycle. The reference date is
// configuration so tests can substitute arbitrary epochs.
type Schedule struct {
	// Reference is a known payday at UTC midnight.
	Reference time.Time

	// CycleDays is the pay cycle length in days.
	CycleDays int
}

// DefaultSchedule returns the production schedule: a four-weekly cycle
// anchored to Friday, January 5, 2024.
func DefaultSchedule() Schedule {
	return Schedule{
		Reference: time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC),
		CycleDays: 28,
	}
}

// cycleOffset returns how many days the date sits past the most recent
// payday, in [0, CycleDays). The modulo is floor-based so dates before
// the reference payday resolve correctly.
func (s Schedule) cycleOffset(date time.Time) int {
	days := int(date.Sub(s.Reference).Hours() / 24)
	offset := days % s.CycleDays
	if offset < 0 {
		offset += s.CycleDays
	}
	return offset
}

// IsPayday reports whether the date falls exactly on the pay cycle.
func (s Schedule) IsPayday(date time.Time) bool {
	return s.cycleOffset(midnight(date)) == 0
}

// NextPayday returns the next payday on or after the date. A date that is
// itself a payday is returned unchanged.
func (s Schedule) NextPayday(date time.Time) time.Time {
	date = midnight(date)
	offset := s.cycleOffset(date)
	if offset == 0 {
		return date
	}
	return date.AddDate(0, 0, s.CycleDays-offset)
}

// DaysUntilPayday returns the number of days from the date to the next
// payday, zero if the date is a payday.
func (s Schedule) DaysUntilPayday(date time.Time) int {
	date = midnight(date)
	offset := s.cycleOffset(date)
	if offset == 0 {
		return 0
	}
	return s.CycleDays - offset
}

func midnight(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}
