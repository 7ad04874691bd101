// Package config handles application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/harlandjw/railcal-api/internal/astro"
	"github.com/harlandjw/railcal-api/internal/payroll"
)

// Config holds all application configuration.
// Fields are populated from environment variables.
type Config struct {
	// Server settings
	Port int    // HTTP port to listen on
	Env  string // development, staging, production

	// Database
	DatabasePath string // Path to SQLite holiday cache

	// Authentication
	APIKey string // API key for the admin endpoints

	// Logging
	LogLevel  string // debug, info, warn, error
	LogFormat string // json, text

	// Engine constants. These default to the production values (central
	// London, the January 2000 new moon, the January 2024 reference
	// payday) but are overridable so tests and relocations can
	// substitute epochs.
	SiteLatitude     float64 // degrees north
	SiteLongitude    float64 // degrees east
	DayLengthMin     float64 // hours, bottom of the day-length band
	DayLengthMax     float64 // hours, top of the day-length band
	PaydayReference  string  // YYYY-MM-DD, a known payday
	PaydayCycleDays  int     // pay cycle length in days
	NewMoonReference string  // RFC 3339, a known new moon instant
}

// Environment constants
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// Load reads configuration from environment variables.
// In development, it first loads from .env file if present.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	// This is a no-op in production where env vars are set directly
	_ = godotenv.Load()

	defSolar := astro.DefaultSolarConfig()
	defLunar := astro.DefaultLunarConfig()
	defPay := payroll.DefaultSchedule()

	cfg := &Config{}

	// Server settings
	cfg.Port = getEnvInt("PORT", 8080)
	cfg.Env = getEnv("ENV", EnvDevelopment)

	// Database
	cfg.DatabasePath = getEnv("DATABASE_PATH", "./data/railcal.db")

	// Authentication
	cfg.APIKey = getEnv("API_KEY", "")

	// Logging
	cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	cfg.LogFormat = getEnv("LOG_FORMAT", "text")

	// Engine constants
	cfg.SiteLatitude = getEnvFloat("SITE_LATITUDE", defSolar.Latitude)
	cfg.SiteLongitude = getEnvFloat("SITE_LONGITUDE", defSolar.Longitude)
	cfg.DayLengthMin = getEnvFloat("DAY_LENGTH_MIN_HOURS", defSolar.MinHours)
	cfg.DayLengthMax = getEnvFloat("DAY_LENGTH_MAX_HOURS", defSolar.MaxHours)
	cfg.PaydayReference = getEnv("PAYDAY_REFERENCE", defPay.Reference.Format("2006-01-02"))
	cfg.PaydayCycleDays = getEnvInt("PAYDAY_CYCLE_DAYS", defPay.CycleDays)
	cfg.NewMoonReference = getEnv("NEW_MOON_REFERENCE", defLunar.ReferenceNewMoon.Format(time.RFC3339))

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required configuration is present and valid.
func (c *Config) Validate() error {
	var errs []error

	// Validate port range
	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port))
	}

	// Validate environment
	switch c.Env {
	case EnvDevelopment, EnvStaging, EnvProduction:
		// Valid
	default:
		errs = append(errs, fmt.Errorf("ENV must be one of: development, staging, production; got %q", c.Env))
	}

	// Validate database path is set
	if c.DatabasePath == "" {
		errs = append(errs, errors.New("DATABASE_PATH is required"))
	}

	// API key is required in production
	if c.Env == EnvProduction && c.APIKey == "" {
		errs = append(errs, errors.New("API_KEY is required in production"))
	}

	// Validate log level
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
		// Valid
	default:
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", c.LogLevel))
	}

	// Validate log format
	switch c.LogFormat {
	case "json", "text":
		// Valid
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be one of: json, text; got %q", c.LogFormat))
	}

	// Validate engine constants
	if c.SiteLatitude < -90 || c.SiteLatitude > 90 {
		errs = append(errs, fmt.Errorf("SITE_LATITUDE must be between -90 and 90, got %g", c.SiteLatitude))
	}
	if c.SiteLongitude < -180 || c.SiteLongitude > 180 {
		errs = append(errs, fmt.Errorf("SITE_LONGITUDE must be between -180 and 180, got %g", c.SiteLongitude))
	}
	if c.DayLengthMin >= c.DayLengthMax {
		errs = append(errs, fmt.Errorf("DAY_LENGTH_MIN_HOURS (%g) must be below DAY_LENGTH_MAX_HOURS (%g)",
			c.DayLengthMin, c.DayLengthMax))
	}
	if c.PaydayCycleDays < 1 {
		errs = append(errs, fmt.Errorf("PAYDAY_CYCLE_DAYS must be positive, got %d", c.PaydayCycleDays))
	}
	if _, err := time.Parse("2006-01-02", c.PaydayReference); err != nil {
		errs = append(errs, fmt.Errorf("PAYDAY_REFERENCE must be YYYY-MM-DD, got %q", c.PaydayReference))
	}
	if _, err := time.Parse(time.RFC3339, c.NewMoonReference); err != nil {
		errs = append(errs, fmt.Errorf("NEW_MOON_REFERENCE must be RFC 3339, got %q", c.NewMoonReference))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// SolarConfig builds the astronomical site configuration.
func (c *Config) SolarConfig() astro.SolarConfig {
	return astro.SolarConfig{
		Latitude:  c.SiteLatitude,
		Longitude: c.SiteLongitude,
		MinHours:  c.DayLengthMin,
		MaxHours:  c.DayLengthMax,
	}
}

// LunarConfig builds the lunar epoch configuration.
// Call Validate first; an unparseable reference falls back to the default.
func (c *Config) LunarConfig() astro.LunarConfig {
	cfg := astro.DefaultLunarConfig()
	if ref, err := time.Parse(time.RFC3339, c.NewMoonReference); err == nil {
		cfg.ReferenceNewMoon = ref
	}
	return cfg
}

// PaySchedule builds the payroll schedule configuration.
// Call Validate first; an unparseable reference falls back to the default.
func (c *Config) PaySchedule() payroll.Schedule {
	s := payroll.DefaultSchedule()
	if ref, err := time.Parse("2006-01-02", c.PaydayReference); err == nil {
		s.Reference = ref
	}
	s.CycleDays = c.PaydayCycleDays
	return s
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// getEnv reads an environment variable with a default fallback.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt reads an environment variable as an integer with a default fallback.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvFloat reads an environment variable as a float with a default fallback.
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
