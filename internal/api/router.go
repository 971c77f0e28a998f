package api

import (
	"net/http"

	"github.com/dom/league-team-hub/internal/api/handlers"
	"github.com/dom/league-team-hub/internal/api/middleware"
	"github.com/dom/league-team-hub/internal/service"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func NewRouter(services *service.Services, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)
	r.Use(middleware.Metrics)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Prometheus metrics
	r.Handle("/metrics", promhttp.Handler())

	// Initialize handlers
	championHandler := handlers.NewChampionHandler(services.Champion, logger)
	draftHandler := handlers.NewDraftHandler(services.Draft, logger)
	scrimHandler := handlers.NewScrimHandler(services.Scrim, services.Statistics, logger)
	playerHandler := handlers.NewPlayerHandler(services.Player, logger)
	synergyHandler := handlers.NewSynergyHandler(services.Synergy, logger)
	patchNoteHandler := handlers.NewPatchNoteHandler(services.PatchNote, logger)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/champions", func(r chi.Router) {
			r.Get("/", championHandler.GetAll)
			r.Put("/{id}/roles", championHandler.UpdateRoles)
			r.Post("/evaluate", championHandler.Evaluate)
		})

		r.Route("/drafts", func(r chi.Router) {
			r.Get("/", draftHandler.List)
			r.Post("/", draftHandler.Create)
			r.Put("/{id}", draftHandler.Update)
			r.Delete("/{id}", draftHandler.Delete)
			r.Post("/{id}/variants", draftHandler.CreateVariant)
			r.Delete("/variants/{variantId}", draftHandler.DeleteVariant)
		})

		r.Route("/scrims", func(r chi.Router) {
			r.Get("/", scrimHandler.List)
			r.Post("/", scrimHandler.Create)
			// Registered before {id} so "statistics" is never parsed as an id.
			r.Get("/statistics", scrimHandler.Statistics)
			r.Put("/{id}", scrimHandler.Update)
			r.Delete("/{id}", scrimHandler.Delete)
		})

		r.Route("/players", func(r chi.Router) {
			r.Get("/", playerHandler.List)
			r.Post("/", playerHandler.Create)
			r.Delete("/{id}", playerHandler.Delete)
		})

		r.Route("/availability", func(r chi.Router) {
			r.Get("/", playerHandler.ListAvailability)
			r.Post("/", playerHandler.UpsertAvailability)
		})

		r.Route("/synergies", func(r chi.Router) {
			r.Get("/", synergyHandler.List)
			r.Post("/", synergyHandler.Create)
			r.Delete("/{id}", synergyHandler.Delete)
		})

		r.Route("/patchnotes", func(r chi.Router) {
			r.Get("/", patchNoteHandler.List)
			r.Post("/", patchNoteHandler.Create)
			r.Delete("/{id}", patchNoteHandler.Delete)
		})
	})

	return r
}
