package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/harlandjw/railcal-api/internal/config"
)

// SetupRoutes configures all HTTP routes and returns the router.
//
// Route structure:
//
//	GET  /health
//	GET  /api/v1/railway/today
//	GET  /api/v1/railway/date/{date}
//	GET  /api/v1/railway/{year}
//	GET  /api/v1/railway/{year}/week/{week}
//	GET  /api/v1/railway/{year}/period/{period}
//	GET  /api/v1/astro/date/{date}
//	GET  /api/v1/payroll/date/{date}
//	GET  /api/v1/holidays/{year}
//	POST /api/v1/admin/holidays/{year}/refresh   (API key)
func SetupRoutes(handlers *Handlers, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		RecoveryMiddleware(logger),
		RequestIDMiddleware(),
		LoggingMiddleware(logger),
		CORSMiddleware(),
	)

	r.Get("/health", handlers.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/railway", func(r chi.Router) {
			r.Get("/today", handlers.GetToday)
			r.Get("/date/{date}", handlers.GetRailwayDate)
			r.Get("/{year}", handlers.GetRailwayYear)
			r.Get("/{year}/week/{week}", handlers.GetRailwayWeek)
			r.Get("/{year}/period/{period}", handlers.GetRailwayPeriod)
		})

		r.Get("/astro/date/{date}", handlers.GetAstronomy)
		r.Get("/payroll/date/{date}", handlers.GetPayroll)
		r.Get("/holidays/{year}", handlers.GetHolidays)

		// Admin routes (API key only)
		r.Route("/admin", func(r chi.Router) {
			r.Use(AuthMiddleware(cfg, logger))
			r.Post("/holidays/{year}/refresh", handlers.RefreshHolidays)
		})
	})

	return r
}
