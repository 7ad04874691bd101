// Package astro estimates solar and lunar conditions for a calendar date.
//
// The formulas are deliberately the classical approximations (sinusoidal
// solar declination, equation-of-time sine fit, synodic-month phase
// offset): accurate to within a few minutes at mid-latitudes, which is
// what a calendar indicator needs, not almanac-grade precision.
package astro

import (
	"fmt"
	"math"
	"time"
)

// SolarConfig fixes the observation site and the day-length reference
// band used for the percentage rescale. Values are configuration, not
// hard-coded literals, so tests can substitute sites.
type SolarConfig struct {
	Latitude  float64 // degrees, north positive
	Longitude float64 // degrees, east positive
	MinHours  float64 // bottom of the day-length band (0%)
	MaxHours  float64 // top of the day-length band (100%)
}

// DefaultSolarConfig returns the production site: central London with a
// 7.5h-16.5h reference band (roughly London's solstice extremes).
func DefaultSolarConfig() SolarConfig {
	return SolarConfig{
		Latitude:  51.5074,
		Longitude: -0.1278,
		MinHours:  7.5,
		MaxHours:  16.5,
	}
}

// DayLengthInfo describes daylight for one date at a fixed site.
type DayLengthInfo struct {
	Hours          float64 `json:"day_length_hours"`
	Sunrise        *string `json:"sunrise"` // "HH:MM", nil during polar day/night
	Sunset         *string `json:"sunset"`
	PercentOfRange float64 `json:"percent_of_range"` // clamped 0..100
	Lengthening    bool    `json:"lengthening"`
	ChangeMinutes  int     `json:"change_minutes"` // |change| vs prior day, rounded
}

const degPerHourAngle = 15 // the sun covers 15 degrees of hour angle per hour

// DayLength estimates daylight duration, sunrise/sunset clock times, the
// position of the date within the site's day-length band, and whether
// days are currently lengthening.
func DayLength(cfg SolarConfig, date time.Time) DayLengthInfo {
	hours, sunrise, sunset := solarDay(cfg, date)

	info := DayLengthInfo{
		Hours:          hours,
		Sunrise:        sunrise,
		Sunset:         sunset,
		PercentOfRange: bandPercent(cfg, hours),
	}

	// Trend against the following day decides the lengthening flag.
	nextHours, _, _ := solarDay(cfg, date.AddDate(0, 0, 1))
	change := nextHours - hours
	info.Lengthening = change > 0
	info.ChangeMinutes = int(math.Round(math.Abs(change) * 60))

	return info
}

// solarDay runs the declination/hour-angle computation for one date.
func solarDay(cfg SolarConfig, date time.Time) (hours float64, sunrise, sunset *string) {
	dayOfYear := float64(date.YearDay())

	// Sinusoidal declination model: peaks at the June solstice.
	declination := 23.44 * math.Sin(rad(360.0/365.0*(dayOfYear+284)))

	cosH := -math.Tan(rad(cfg.Latitude)) * math.Tan(rad(declination))
	switch {
	case cosH < -1:
		// Sun never sets. Cannot occur at mid-latitudes but the formula
		// is kept complete.
		return 24, nil, nil
	case cosH > 1:
		// Sun never rises.
		return 0, nil, nil
	}

	hourAngle := deg(math.Acos(cosH))
	hours = 2 * hourAngle / degPerHourAngle

	// Equation of time shifts apparent solar noon by up to ~16 minutes
	// over the year; combined with the site longitude it fixes the clock
	// time of solar noon.
	b := rad(360.0 / 365.0 * (dayOfYear - 81))
	eot := 9.87*math.Sin(2*b) - 7.53*math.Cos(b) - 1.5*math.Sin(b)
	timeCorrection := 4*cfg.Longitude + eot
	solarNoon := 720 - timeCorrection

	rise := clockTime(solarNoon - hours*30)
	set := clockTime(solarNoon + hours*30)
	return hours, &rise, &set
}

// bandPercent rescales a day length linearly across the configured band,
// clamped to [0, 100].
func bandPercent(cfg SolarConfig, hours float64) float64 {
	pct := (hours - cfg.MinHours) / (cfg.MaxHours - cfg.MinHours) * 100
	return math.Min(100, math.Max(0, pct))
}

// clockTime formats minutes-from-midnight as zero-padded HH:MM.
func clockTime(minutes float64) string {
	m := int(minutes)
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

func rad(degrees float64) float64 { return degrees * math.Pi / 180 }
func deg(radians float64) float64 { return radians * 180 / math.Pi }
