package astro

import (
	"math"
	"testing"
	"time"
)

func TestMoonPhase_ReferenceNewMoon(t *testing.T) {
	cfg := DefaultLunarConfig()

	// At the reference instant itself the cycle offset is exactly zero.
	info := MoonPhase(cfg, cfg.ReferenceNewMoon)
	if info.Phase != NewMoon {
		t.Errorf("Phase = %v, want New Moon", info.Phase)
	}
	if info.Illumination != 0 {
		t.Errorf("Illumination = %d, want 0", info.Illumination)
	}
	if info.DayOffset != 0 {
		t.Errorf("DayOffset = %g, want 0", info.DayOffset)
	}

	// The calendar date of the reference new moon is within a day of the
	// instant; still dark, still new.
	day := MoonPhase(cfg, date(2000, time.January, 6))
	if day.Phase != NewMoon {
		t.Errorf("reference date Phase = %v, want New Moon", day.Phase)
	}
	if day.Illumination > 2 {
		t.Errorf("reference date Illumination = %d, want near 0", day.Illumination)
	}
}

func TestMoonPhase_Cycle(t *testing.T) {
	cfg := DefaultLunarConfig()

	tests := []struct {
		name      string
		date      time.Time
		wantPhase Phase
	}{
		{"first quarter", date(2000, time.January, 14), FirstQuarter},
		{"full moon", date(2000, time.January, 21), FullMoon},
		{"next cycle new moon", date(2024, time.January, 11), NewMoon},
		{"next cycle full moon", date(2024, time.January, 25), FullMoon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := MoonPhase(cfg, tt.date)
			if info.Phase != tt.wantPhase {
				t.Errorf("Phase = %v, want %v", info.Phase, tt.wantPhase)
			}
			if info.Name != tt.wantPhase.String() {
				t.Errorf("Name = %q, want %q", info.Name, tt.wantPhase.String())
			}
		})
	}

	full := MoonPhase(cfg, date(2000, time.January, 21))
	if full.Illumination < 98 {
		t.Errorf("full moon Illumination = %d, want near 100", full.Illumination)
	}
}

func TestMoonPhase_OffsetNormalized(t *testing.T) {
	cfg := DefaultLunarConfig()

	// Dates before the reference new moon must still normalize into
	// [0, SynodicMonth).
	for _, d := range []time.Time{
		date(1999, time.December, 20),
		date(1990, time.June, 1),
		date(2000, time.January, 5),
	} {
		info := MoonPhase(cfg, d)
		if info.DayOffset < 0 || info.DayOffset >= cfg.SynodicMonth {
			t.Errorf("%s: DayOffset = %g outside [0, %g)", d.Format("2006-01-02"), info.DayOffset, cfg.SynodicMonth)
		}
		if info.Illumination < 0 || info.Illumination > 100 {
			t.Errorf("%s: Illumination = %d outside [0, 100]", d.Format("2006-01-02"), info.Illumination)
		}
	}
}

func TestMoonPhase_BucketBoundaries(t *testing.T) {
	// Walk one synodic month from the reference in quarter-band steps;
	// phases must advance monotonically and wrap back to new moon.
	cfg := DefaultLunarConfig()
	band := cfg.SynodicMonth / 8

	for i := 0; i < 8; i++ {
		center := cfg.ReferenceNewMoon.Add(time.Duration(float64(i) * band * 24 * float64(time.Hour)))
		info := MoonPhase(cfg, center)
		if info.Phase != Phase(i) {
			t.Errorf("band %d center: Phase = %v, want %v", i, info.Phase, Phase(i))
		}
	}

	// Just past the final half band the cycle wraps to new moon.
	wrap := cfg.ReferenceNewMoon.Add(time.Duration((cfg.SynodicMonth - 0.5) * 24 * float64(time.Hour)))
	if info := MoonPhase(cfg, wrap); info.Phase != NewMoon {
		t.Errorf("wrap Phase = %v, want New Moon", info.Phase)
	}
}

func TestPhase_Significant(t *testing.T) {
	significant := map[Phase]bool{
		NewMoon:      true,
		FirstQuarter: true,
		FullMoon:     true,
		LastQuarter:  true,
	}

	for p := NewMoon; p <= WaningCrescent; p++ {
		if got := p.Significant(); got != significant[p] {
			t.Errorf("%v.Significant() = %v, want %v", p, got, significant[p])
		}
	}
}

func TestMoonPhase_IlluminationMatchesOffset(t *testing.T) {
	cfg := DefaultLunarConfig()

	// Half a cycle from the reference must be fully lit.
	half := cfg.ReferenceNewMoon.Add(time.Duration(cfg.SynodicMonth / 2 * 24 * float64(time.Hour)))
	info := MoonPhase(cfg, half)
	if info.Illumination != 100 {
		t.Errorf("half-cycle Illumination = %d, want 100", info.Illumination)
	}
	if math.Abs(info.DayOffset-cfg.SynodicMonth/2) > 1e-6 {
		t.Errorf("half-cycle DayOffset = %g, want %g", info.DayOffset, cfg.SynodicMonth/2)
	}
}
