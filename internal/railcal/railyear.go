package railcal

import (
	"errors"
	"fmt"
	"time"
)

// Calendar layout constants.
const (
	// DaysPerWeek is the length of a railway week. Day 1 is Saturday.
	DaysPerWeek = 7

	// WeeksPerPeriod groups railway weeks into accounting periods.
	WeeksPerPeriod = 4

	// MaxPeriods is the number of periods in a railway year. In a 53-week
	// year the final period absorbs the extra week.
	MaxPeriods = 13
)

// Errors returned by the inverse converters. Out-of-range inputs fail
// fast rather than producing arithmetically consistent nonsense dates.
var (
	ErrWeekOutOfRange   = errors.New("rail week out of range")
	ErrPeriodOutOfRange = errors.New("period out of range")
)

// Coordinate locates a calendar date within the railway calendar.
type Coordinate struct {
	RailwayYear  int       `json:"railway_year"`
	RailWeek     int       `json:"rail_week"`      // 1..TotalWeeks
	DayOfWeek    int       `json:"day_of_week"`    // 1=Saturday .. 7=Friday
	Period       int       `json:"period"`         // 1..13
	WeekInPeriod int       `json:"week_in_period"` // 1..4
	TotalWeeks   int       `json:"total_weeks"`    // 52 or 53
	WeekOneStart time.Time `json:"week_one_start"`
	Display      string    `json:"display"` // "YYYY/YY"
}

// PeriodRange describes the calendar span of one accounting period.
type PeriodRange struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	StartWeek int       `json:"start_week"`
	EndWeek   int       `json:"end_week"`
}

// WeekOneStart returns Week 1 Day 1 of a railway year: the Saturday on or
// before March 31. The result always lands between March 25 and March 31.
func WeekOneStart(railwayYear int) time.Time {
	march31 := time.Date(railwayYear, time.March, 31, 0, 0, 0, 0, time.UTC)
	daysBack := (int(march31.Weekday()) + 1) % DaysPerWeek
	return march31.AddDate(0, 0, -daysBack)
}

// TotalWeeks returns the number of railway weeks in a railway year,
// always 52 or 53.
func TotalWeeks(railwayYear int) int {
	return daysBetween(WeekOneStart(railwayYear), WeekOneStart(railwayYear+1)) / DaysPerWeek
}

// yearMembership tags the outcome of the railway-year boundary decision.
// A railway year spans parts of two Gregorian years, so a date can belong
// to the previous railway year, the one matching its calendar year, or
// (late March) the next one.
type yearMembership int

const (
	previousYear yearMembership = iota
	sameYear
	rolledForward
)

// resolveYear decides which railway year a date belongs to and returns
// that year together with its week-one start.
func resolveYear(date time.Time) (int, time.Time, yearMembership) {
	calendarYear := date.Year()

	start := WeekOneStart(calendarYear)
	switch {
	case date.Before(start):
		y := calendarYear - 1
		return y, WeekOneStart(y), previousYear
	case !date.Before(WeekOneStart(calendarYear + 1)):
		y := calendarYear + 1
		return y, WeekOneStart(y), rolledForward
	default:
		return calendarYear, start, sameYear
	}
}

// DateToRailway converts a calendar date into its railway coordinate.
// Time-of-day and zone on the input are ignored.
func DateToRailway(date time.Time) Coordinate {
	date = Midnight(date)
	year, start, _ := resolveYear(date)

	daysSinceStart := daysBetween(start, date)
	week := daysSinceStart/DaysPerWeek + 1

	return Coordinate{
		RailwayYear:  year,
		RailWeek:     week,
		DayOfWeek:    daysSinceStart%DaysPerWeek + 1,
		Period:       periodOfWeek(week),
		WeekInPeriod: (week-1)%WeeksPerPeriod + 1,
		TotalWeeks:   TotalWeeks(year),
		WeekOneStart: start,
		Display:      DisplayYear(year),
	}
}

// periodOfWeek derives the accounting period from a rail week. Week 53 of
// a long year stays in period 13 so the period range holds for every week.
func periodOfWeek(week int) int {
	p := (week-1)/WeeksPerPeriod + 1
	if p > MaxPeriods {
		p = MaxPeriods
	}
	return p
}

// WeekRange returns the first and last calendar day of a rail week.
// The week must satisfy 1 <= week <= TotalWeeks(railwayYear).
func WeekRange(railwayYear, week int) (start, end time.Time, err error) {
	total := TotalWeeks(railwayYear)
	if week < 1 || week > total {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: week %d of %d/%d (have %d weeks)",
			ErrWeekOutOfRange, week, railwayYear, (railwayYear+1)%100, total)
	}
	start = WeekOneStart(railwayYear).AddDate(0, 0, (week-1)*DaysPerWeek)
	return start, start.AddDate(0, 0, DaysPerWeek-1), nil
}

// PeriodDates returns the week span and calendar span of an accounting
// period. The final period is clamped to the year's last week, so in a
// 53-week year period 13 holds five weeks.
func PeriodDates(railwayYear, period int) (PeriodRange, error) {
	if period < 1 || period > MaxPeriods {
		return PeriodRange{}, fmt.Errorf("%w: period %d (valid 1..%d)", ErrPeriodOutOfRange, period, MaxPeriods)
	}

	total := TotalWeeks(railwayYear)
	startWeek := (period-1)*WeeksPerPeriod + 1
	endWeek := period * WeeksPerPeriod
	if period == MaxPeriods || endWeek > total {
		endWeek = total
	}

	start, _, err := WeekRange(railwayYear, startWeek)
	if err != nil {
		return PeriodRange{}, err
	}
	_, end, err := WeekRange(railwayYear, endWeek)
	if err != nil {
		return PeriodRange{}, err
	}

	return PeriodRange{Start: start, End: end, StartWeek: startWeek, EndWeek: endWeek}, nil
}

// DisplayYear renders a railway year in its conventional "YYYY/YY" form,
// e.g. 2025/26 for the year starting March 2025.
func DisplayYear(railwayYear int) string {
	return fmt.Sprintf("%d/%02d", railwayYear, (railwayYear+1)%100)
}
