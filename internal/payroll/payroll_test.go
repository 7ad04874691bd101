package payroll

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDefaultSchedule(t *testing.T) {
	s := DefaultSchedule()

	if s.Reference.Weekday() != time.Friday {
		t.Errorf("reference payday is a %s, want Friday", s.Reference.Weekday())
	}
	if s.CycleDays != 28 {
		t.Errorf("CycleDays = %d, want 28", s.CycleDays)
	}
}

func TestIsPayday(t *testing.T) {
	s := DefaultSchedule()
	ref := s.Reference

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"reference payday", ref, true},
		{"day after reference", ref.AddDate(0, 0, 1), false},
		{"day before reference", ref.AddDate(0, 0, -1), false},
		{"one cycle later", ref.AddDate(0, 0, 28), true},
		{"many cycles later", ref.AddDate(0, 0, 28*26), true},
		{"one cycle earlier", ref.AddDate(0, 0, -28), true},
		{"mid-cycle before reference", ref.AddDate(0, 0, -7), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.IsPayday(tt.date); got != tt.want {
				t.Errorf("IsPayday(%s) = %v, want %v", tt.date.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}

func TestNextPayday(t *testing.T) {
	s := DefaultSchedule()
	ref := s.Reference

	tests := []struct {
		name string
		date time.Time
		want time.Time
	}{
		{"payday returns itself", ref, ref},
		{"day after rolls to next cycle", ref.AddDate(0, 0, 1), ref.AddDate(0, 0, 28)},
		{"last day of cycle", ref.AddDate(0, 0, 27), ref.AddDate(0, 0, 28)},
		{"before reference resolves forward", ref.AddDate(0, 0, -7), ref},
		{"long before reference", ref.AddDate(0, 0, -35), ref.AddDate(0, 0, -28)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.NextPayday(tt.date)
			if !got.Equal(tt.want) {
				t.Errorf("NextPayday(%s) = %s, want %s",
					tt.date.Format("2006-01-02"), got.Format("2006-01-02"), tt.want.Format("2006-01-02"))
			}
		})
	}
}

func TestDaysUntilPayday(t *testing.T) {
	s := Schedule{Reference: date(2024, time.January, 5), CycleDays: 28}

	if got := s.DaysUntilPayday(s.Reference); got != 0 {
		t.Errorf("DaysUntilPayday(reference) = %d, want 0", got)
	}
	if got := s.DaysUntilPayday(s.Reference.AddDate(0, 0, 1)); got != 27 {
		t.Errorf("DaysUntilPayday(reference+1) = %d, want 27", got)
	}
	if got := s.DaysUntilPayday(s.Reference.AddDate(0, 0, -1)); got != 1 {
		t.Errorf("DaysUntilPayday(reference-1) = %d, want 1", got)
	}
}

func TestSchedule_CustomEpoch(t *testing.T) {
	// The reference date is configuration; any epoch works.
	s := Schedule{Reference: date(2030, time.July, 12), CycleDays: 14}

	if !s.IsPayday(date(2030, time.July, 26)) {
		t.Error("expected payday one fortnight after the custom reference")
	}
	if !s.IsPayday(date(2030, time.June, 28)) {
		t.Error("expected payday one fortnight before the custom reference")
	}
	if got := s.NextPayday(date(2030, time.July, 13)); !got.Equal(date(2030, time.July, 26)) {
		t.Errorf("NextPayday = %s, want 2030-07-26", got.Format("2006-01-02"))
	}
}
