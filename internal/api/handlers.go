package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/harlandjw/railcal-api/internal/astro"
	"github.com/harlandjw/railcal-api/internal/config"
	"github.com/harlandjw/railcal-api/internal/database"
	"github.com/harlandjw/railcal-api/internal/holidays"
	"github.com/harlandjw/railcal-api/internal/payroll"
	"github.com/harlandjw/railcal-api/internal/railcal"
)

// Handlers contains all HTTP handlers and their dependencies.
//
// The engine packages are pure; the handlers capture the current date
// once per request so the converter and the astronomical estimator see
// the same day.
type Handlers struct {
	db     *database.DB
	cfg    *config.Config
	logger *slog.Logger

	solar astro.SolarConfig
	lunar astro.LunarConfig
	pay   payroll.Schedule

	// now is swappable in tests
	now func() time.Time
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(db *database.DB, cfg *config.Config, logger *slog.Logger) *Handlers {
	return &Handlers{
		db:     db,
		cfg:    cfg,
		logger: logger,
		solar:  cfg.SolarConfig(),
		lunar:  cfg.LunarConfig(),
		pay:    cfg.PaySchedule(),
		now:    time.Now,
	}
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Check database health
	if err := h.db.Health(ctx); err != nil {
		h.logger.Warn("health check failed", slog.Any("error", err))
		WriteError(w, http.StatusServiceUnavailable, "Database unhealthy", "HEALTH_CHECK_FAILED")
		return
	}

	WriteSuccess(w, map[string]string{
		"status": "healthy",
	})
}

// =============================================================================
// Railway calendar
// =============================================================================

// GetToday handles GET /api/v1/railway/today
func (h *Handlers) GetToday(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, railcal.DateToRailway(h.now()))
}

// GetRailwayDate handles GET /api/v1/railway/date/{date}
func (h *Handlers) GetRailwayDate(w http.ResponseWriter, r *http.Request) {
	date, ok := h.pathDate(w, r)
	if !ok {
		return
	}
	WriteSuccess(w, railcal.DateToRailway(date))
}

// GetRailwayYear handles GET /api/v1/railway/{year}
// Returns the year's week-one start, total weeks, and display form.
func (h *Handlers) GetRailwayYear(w http.ResponseWriter, r *http.Request) {
	year, ok := h.pathInt(w, r, "year")
	if !ok {
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"railway_year":   year,
		"display":        railcal.DisplayYear(year),
		"week_one_start": railcal.WeekOneStart(year),
		"total_weeks":    railcal.TotalWeeks(year),
	})
}

// GetRailwayWeek handles GET /api/v1/railway/{year}/week/{week}
func (h *Handlers) GetRailwayWeek(w http.ResponseWriter, r *http.Request) {
	year, ok := h.pathInt(w, r, "year")
	if !ok {
		return
	}
	week, ok := h.pathInt(w, r, "week")
	if !ok {
		return
	}

	start, end, err := railcal.WeekRange(year, week)
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"railway_year": year,
		"rail_week":    week,
		"start":        start,
		"end":          end,
	})
}

// GetRailwayPeriod handles GET /api/v1/railway/{year}/period/{period}
func (h *Handlers) GetRailwayPeriod(w http.ResponseWriter, r *http.Request) {
	year, ok := h.pathInt(w, r, "year")
	if !ok {
		return
	}
	period, ok := h.pathInt(w, r, "period")
	if !ok {
		return
	}

	pr, err := railcal.PeriodDates(year, period)
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"railway_year": year,
		"period":       period,
		"range":        pr,
	})
}

// =============================================================================
// Astronomy
// =============================================================================

// GetAstronomy handles GET /api/v1/astro/date/{date}
// Returns day-length and moon-phase estimates for the date.
func (h *Handlers) GetAstronomy(w http.ResponseWriter, r *http.Request) {
	date, ok := h.pathDate(w, r)
	if !ok {
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"date":       railcal.FormatDate(date),
		"day_length": astro.DayLength(h.solar, date),
		"moon":       astro.MoonPhase(h.lunar, date),
	})
}

// =============================================================================
// Payroll
// =============================================================================

// GetPayroll handles GET /api/v1/payroll/date/{date}
func (h *Handlers) GetPayroll(w http.ResponseWriter, r *http.Request) {
	date, ok := h.pathDate(w, r)
	if !ok {
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"date":        railcal.FormatDate(date),
		"is_payday":   h.pay.IsPayday(date),
		"next_payday": railcal.FormatDate(h.pay.NextPayday(date)),
		"days_until":  h.pay.DaysUntilPayday(date),
		"cycle_days":  h.pay.CycleDays,
	})
}

// =============================================================================
// Holidays
// =============================================================================

// GetHolidays handles GET /api/v1/holidays/{year}
// Serves the cached table when present, otherwise computes and caches it.
func (h *Handlers) GetHolidays(w http.ResponseWriter, r *http.Request) {
	year, ok := h.pathInt(w, r, "year")
	if !ok {
		return
	}

	table, err := h.holidayTable(r.Context(), year)
	if err != nil {
		h.logger.Error("failed to get holiday table",
			slog.Int("year", year),
			slog.Any("error", err))
		WriteInternalError(w, "Failed to retrieve holiday table")
		return
	}

	WriteSuccess(w, table)
}

// RefreshHolidays handles POST /api/v1/admin/holidays/{year}/refresh
// Recomputes a year's table and replaces the cached rows.
func (h *Handlers) RefreshHolidays(w http.ResponseWriter, r *http.Request) {
	year, ok := h.pathInt(w, r, "year")
	if !ok {
		return
	}

	entries := holidays.UKBankHolidays(year)
	if err := h.db.SaveHolidayTable(r.Context(), year, entries); err != nil {
		h.logger.Error("failed to refresh holiday table",
			slog.Int("year", year),
			slog.Any("error", err))
		WriteInternalError(w, "Failed to refresh holiday table")
		return
	}

	h.logger.Info("holiday table refreshed",
		slog.Int("year", year),
		slog.Int("entries", len(entries)))

	WriteSuccess(w, database.HolidayTable{Year: year, Entries: entries, Cached: false})
}

// holidayTable serves from the cache, computing and caching on a miss.
func (h *Handlers) holidayTable(ctx context.Context, year int) (*database.HolidayTable, error) {
	entries, err := h.db.GetHolidayTable(ctx, year)
	if err == nil {
		return &database.HolidayTable{Year: year, Entries: entries, Cached: true}, nil
	}
	if !database.IsNotFound(err) {
		return nil, fmt.Errorf("get holiday table: %w", err)
	}

	entries = holidays.UKBankHolidays(year)
	if err := h.db.SaveHolidayTable(ctx, year, entries); err != nil {
		// The computed table is still good; a cache write failure is
		// logged, not surfaced.
		h.logger.Warn("failed to cache holiday table",
			slog.Int("year", year),
			slog.Any("error", err))
	}

	return &database.HolidayTable{Year: year, Entries: entries, Cached: false}, nil
}

// =============================================================================
// Path parameter helpers
// =============================================================================

// pathDate extracts and validates the {date} path parameter.
func (h *Handlers) pathDate(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	dateStr := chi.URLParam(r, "date")
	date, err := railcal.ParseDate(dateStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid date format: %s. Use YYYY-MM-DD", dateStr))
		return time.Time{}, false
	}
	return date, true
}

// pathInt extracts an integer path parameter.
func (h *Handlers) pathInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := chi.URLParam(r, name)
	v, err := strconv.Atoi(raw)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid %s: %q", name, raw))
		return 0, false
	}
	return v, true
}
