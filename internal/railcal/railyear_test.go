package railcal

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekOneStart(t *testing.T) {
	// Week 1 Day 1 is the Saturday on or before March 31.
	tests := []struct {
		year int
		want time.Time
	}{
		{2020, date(2020, time.March, 28)},
		{2021, date(2021, time.March, 27)},
		{2022, date(2022, time.March, 26)},
		{2023, date(2023, time.March, 25)},
		{2024, date(2024, time.March, 30)},
		{2025, date(2025, time.March, 29)},
		{2026, date(2026, time.March, 28)},
		{2027, date(2027, time.March, 27)},
		{2028, date(2028, time.March, 25)},
		{2029, date(2029, time.March, 31)}, // March 31 itself is a Saturday
		{2030, date(2030, time.March, 30)},
	}

	for _, tt := range tests {
		got := WeekOneStart(tt.year)
		if !got.Equal(tt.want) {
			t.Errorf("WeekOneStart(%d) = %s, want %s", tt.year, FormatDate(got), FormatDate(tt.want))
		}
		if got.Weekday() != time.Saturday {
			t.Errorf("WeekOneStart(%d) = %s is a %s, want Saturday", tt.year, FormatDate(got), got.Weekday())
		}
		if got.Month() != time.March || got.Day() < 25 {
			t.Errorf("WeekOneStart(%d) = %s outside March 25-31", tt.year, FormatDate(got))
		}
	}
}

func TestTotalWeeks(t *testing.T) {
	longYears := map[int]bool{2023: true, 2028: true}

	for year := 2000; year <= 2050; year++ {
		got := TotalWeeks(year)
		if got != 52 && got != 53 {
			t.Fatalf("TotalWeeks(%d) = %d, want 52 or 53", year, got)
		}
		if want, ok := longYears[year]; ok && want && got != 53 {
			t.Errorf("TotalWeeks(%d) = %d, want 53", year, got)
		}
	}

	if got := TotalWeeks(2024); got != 52 {
		t.Errorf("TotalWeeks(2024) = %d, want 52", got)
	}
}

func TestDateToRailway_WeekOne(t *testing.T) {
	// Week one start must map to week 1, day 1, period 1 for every year.
	for year := 2015; year <= 2035; year++ {
		coord := DateToRailway(WeekOneStart(year))

		if coord.RailwayYear != year {
			t.Errorf("year %d: RailwayYear = %d", year, coord.RailwayYear)
		}
		if coord.RailWeek != 1 || coord.DayOfWeek != 1 {
			t.Errorf("year %d: week/day = %d/%d, want 1/1", year, coord.RailWeek, coord.DayOfWeek)
		}
		if coord.Period != 1 || coord.WeekInPeriod != 1 {
			t.Errorf("year %d: period/weekInPeriod = %d/%d, want 1/1", year, coord.Period, coord.WeekInPeriod)
		}
	}
}

func TestDateToRailway_YearBoundary(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		wantYear int
		wantWeek int
		wantDay  int
	}{
		{
			// The day before 2025's week one still belongs to 2024/25.
			name:     "last day of previous railway year",
			date:     date(2025, time.March, 28),
			wantYear: 2024,
			wantWeek: 52,
			wantDay:  7,
		},
		{
			name:     "first day of new railway year",
			date:     date(2025, time.March, 29),
			wantYear: 2025,
			wantWeek: 1,
			wantDay:  1,
		},
		{
			// January belongs to the railway year that started the
			// previous March.
			name:     "new year's day",
			date:     date(2025, time.January, 1),
			wantYear: 2024,
			wantWeek: 40,
			wantDay:  5,
		},
		{
			// 2023/24 runs 53 weeks; its final week is week 53.
			name:     "week 53 of a long year",
			date:     date(2024, time.March, 29),
			wantYear: 2023,
			wantWeek: 53,
			wantDay:  7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coord := DateToRailway(tt.date)
			if coord.RailwayYear != tt.wantYear {
				t.Errorf("RailwayYear = %d, want %d", coord.RailwayYear, tt.wantYear)
			}
			if coord.RailWeek != tt.wantWeek {
				t.Errorf("RailWeek = %d, want %d", coord.RailWeek, tt.wantWeek)
			}
			if coord.DayOfWeek != tt.wantDay {
				t.Errorf("DayOfWeek = %d, want %d", coord.DayOfWeek, tt.wantDay)
			}
		})
	}
}

func TestDateToRailway_DayOfWeekMapping(t *testing.T) {
	// Day 1 is Saturday through day 7 Friday.
	start := WeekOneStart(2025)
	for offset := 0; offset < 7; offset++ {
		coord := DateToRailway(start.AddDate(0, 0, offset))
		if coord.DayOfWeek != offset+1 {
			t.Errorf("offset %d: DayOfWeek = %d, want %d", offset, coord.DayOfWeek, offset+1)
		}
	}

	if wd := start.AddDate(0, 0, 6).Weekday(); wd != time.Friday {
		t.Errorf("day 7 falls on %s, want Friday", wd)
	}
}

func TestDateToRailway_Periods(t *testing.T) {
	tests := []struct {
		week             int
		wantPeriod       int
		wantWeekInPeriod int
	}{
		{1, 1, 1},
		{4, 1, 4},
		{5, 2, 1},
		{8, 2, 4},
		{48, 12, 4},
		{49, 13, 1},
		{52, 13, 4},
	}

	start := WeekOneStart(2025)
	for _, tt := range tests {
		coord := DateToRailway(start.AddDate(0, 0, (tt.week-1)*7))
		if coord.Period != tt.wantPeriod || coord.WeekInPeriod != tt.wantWeekInPeriod {
			t.Errorf("week %d: period/weekInPeriod = %d/%d, want %d/%d",
				tt.week, coord.Period, coord.WeekInPeriod, tt.wantPeriod, tt.wantWeekInPeriod)
		}
	}

	// Week 53 of a long year stays in the final period.
	coord := DateToRailway(WeekOneStart(2023).AddDate(0, 0, 52*7))
	if coord.RailWeek != 53 {
		t.Fatalf("RailWeek = %d, want 53", coord.RailWeek)
	}
	if coord.Period != 13 {
		t.Errorf("week 53 Period = %d, want 13", coord.Period)
	}
}

func TestWeekRange_RoundTrip(t *testing.T) {
	for _, year := range []int{2023, 2024, 2025, 2028} {
		total := TotalWeeks(year)
		for week := 1; week <= total; week++ {
			start, end, err := WeekRange(year, week)
			if err != nil {
				t.Fatalf("WeekRange(%d, %d): %v", year, week, err)
			}

			if got := daysBetween(start, end); got != 6 {
				t.Errorf("WeekRange(%d, %d) spans %d days, want 6", year, week, got)
			}

			for _, d := range []time.Time{start, end} {
				coord := DateToRailway(d)
				if coord.RailwayYear != year || coord.RailWeek != week {
					t.Errorf("DateToRailway(%s) = %d/W%d, want %d/W%d",
						FormatDate(d), coord.RailwayYear, coord.RailWeek, year, week)
				}
			}
		}
	}
}

func TestWeekRange_OutOfRange(t *testing.T) {
	for _, week := range []int{0, -1, 53, 100} {
		if _, _, err := WeekRange(2024, week); !errors.Is(err, ErrWeekOutOfRange) {
			t.Errorf("WeekRange(2024, %d) err = %v, want ErrWeekOutOfRange", week, err)
		}
	}

	// Week 53 is valid in a 53-week year.
	if _, _, err := WeekRange(2023, 53); err != nil {
		t.Errorf("WeekRange(2023, 53): %v", err)
	}
}

func TestPeriodDates(t *testing.T) {
	tests := []struct {
		year          int
		period        int
		wantStartWeek int
		wantEndWeek   int
	}{
		{2024, 1, 1, 4},
		{2024, 2, 5, 8},
		{2024, 13, 49, 52},
		{2023, 13, 49, 53}, // long year: final period holds five weeks
	}

	for _, tt := range tests {
		pr, err := PeriodDates(tt.year, tt.period)
		if err != nil {
			t.Fatalf("PeriodDates(%d, %d): %v", tt.year, tt.period, err)
		}
		if pr.StartWeek != tt.wantStartWeek || pr.EndWeek != tt.wantEndWeek {
			t.Errorf("PeriodDates(%d, %d) weeks = %d-%d, want %d-%d",
				tt.year, tt.period, pr.StartWeek, pr.EndWeek, tt.wantStartWeek, tt.wantEndWeek)
		}

		wantStart, _, _ := WeekRange(tt.year, tt.wantStartWeek)
		_, wantEnd, _ := WeekRange(tt.year, tt.wantEndWeek)
		if !pr.Start.Equal(wantStart) || !pr.End.Equal(wantEnd) {
			t.Errorf("PeriodDates(%d, %d) = %s..%s, want %s..%s",
				tt.year, tt.period,
				FormatDate(pr.Start), FormatDate(pr.End),
				FormatDate(wantStart), FormatDate(wantEnd))
		}
	}
}

func TestPeriodDates_OutOfRange(t *testing.T) {
	for _, period := range []int{0, -3, 14} {
		if _, err := PeriodDates(2024, period); !errors.Is(err, ErrPeriodOutOfRange) {
			t.Errorf("PeriodDates(2024, %d) err = %v, want ErrPeriodOutOfRange", period, err)
		}
	}
}

func TestDisplayYear(t *testing.T) {
	tests := []struct {
		year int
		want string
	}{
		{2025, "2025/26"},
		{2024, "2024/25"},
		{1999, "1999/00"},
		{2099, "2099/00"},
	}

	for _, tt := range tests {
		if got := DisplayYear(tt.year); got != tt.want {
			t.Errorf("DisplayYear(%d) = %q, want %q", tt.year, got, tt.want)
		}
	}
}
