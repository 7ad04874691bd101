package astro

import (
	"math"
	"time"
)

// LunarConfig anchors phase computation to a known new moon instant.
type LunarConfig struct {
	// ReferenceNewMoon is a known new moon instant. The default is the
	// new moon of January 6, 2000 18:14 UTC.
	ReferenceNewMoon time.Time

	// SynodicMonth is the mean new-moon-to-new-moon cycle in days.
	SynodicMonth float64
}

// DefaultLunarConfig returns the production lunar epoch.
func DefaultLunarConfig() LunarConfig {
	return LunarConfig{
		ReferenceNewMoon: time.Date(2000, time.January, 6, 18, 14, 0, 0, time.UTC),
		SynodicMonth:     29.53058867,
	}
}

// Phase indexes the eight named lunar phases.
type Phase int

const (
	NewMoon Phase = iota
	WaxingCrescent
	FirstQuarter
	WaxingGibbous
	FullMoon
	WaningGibbous
	LastQuarter
	WaningCrescent
)

var phaseNames = [...]string{
	"New Moon",
	"Waxing Crescent",
	"First Quarter",
	"Waxing Gibbous",
	"Full Moon",
	"Waning Gibbous",
	"Last Quarter",
	"Waning Crescent",
}

// String returns the display name of the phase.
func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "Unknown"
	}
	return phaseNames[p]
}

// Significant reports whether the phase is one of the four principal
// phases (new, first quarter, full, last quarter).
func (p Phase) Significant() bool {
	return p%2 == 0
}

// MoonPhaseInfo describes the moon on one date.
type MoonPhaseInfo struct {
	Phase        Phase   `json:"phase_index"`
	Name         string  `json:"phase_name"`
	Illumination int     `json:"illumination_percent"` // 0..100
	DayOffset    float64 `json:"lunar_day_offset"`     // days into the cycle, [0, SynodicMonth)
}

// MoonPhase estimates the lunar phase for a calendar date from its offset
// into the synodic cycle.
func MoonPhase(cfg LunarConfig, date time.Time) MoonPhaseInfo {
	days := date.Sub(cfg.ReferenceNewMoon).Hours() / 24

	offset := math.Mod(days, cfg.SynodicMonth)
	if offset < 0 {
		offset += cfg.SynodicMonth
	}

	// Eight equal bands, with thresholds shifted half a band so each
	// named phase is centered on its exact instant. Past the final half
	// band the cycle wraps back to new moon.
	band := cfg.SynodicMonth / 8
	phase := Phase(int(math.Floor(offset/band+0.5)) % 8)

	illumination := int(math.Round((1 - math.Cos(2*math.Pi*offset/cfg.SynodicMonth)) / 2 * 100))

	return MoonPhaseInfo{
		Phase:        phase,
		Name:         phase.String(),
		Illumination: illumination,
		DayOffset:    offset,
	}
}
