package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zapponejosh/feriados-api/internal/config"
)

// SetupRoutes configures all HTTP routes and returns the router.
//
// Route structure:
//
//	GET /health
//	GET /api/v1/feriados                  current year
//	GET /api/v1/feriados/{year}           ?tipo=&uf=&subsecao=&format=json|csv|ics
//	GET /api/v1/feriados/{year}/pascoa
//	GET /api/v1/subsecoes
func SetupRoutes(handlers *Handlers, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		RequestIDMiddleware(),
		RecoveryMiddleware(logger),
		LoggingMiddleware(logger),
		CORSMiddleware(cfg.CORSAllowedOrigin),
	)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteNotFound(w, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteMethodNotAllowed(w)
	})

	r.Get("/health", handlers.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/feriados", handlers.GetCurrentYearHolidays)
		r.Get("/feriados/{year}", handlers.GetYearHolidays)
		r.Get("/feriados/{year}/pascoa", handlers.GetEaster)
		r.Get("/subsecoes", handlers.GetSubsecoes)
	})

	return r
}
