package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/dom/league-team-hub/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ScrimHandler struct {
	scrimService      *service.ScrimService
	statisticsService *service.StatisticsService
	logger            *zap.Logger
}

func NewScrimHandler(scrimService *service.ScrimService, statisticsService *service.StatisticsService, logger *zap.Logger) *ScrimHandler {
	return &ScrimHandler{
		scrimService:      scrimService,
		statisticsService: statisticsService,
		logger:            logger,
	}
}

func (h *ScrimHandler) List(w http.ResponseWriter, r *http.Request) {
	scrims, err := h.scrimService.List(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, "scrim.List", err)
		return
	}

	respondJSON(w, http.StatusOK, scrims)
}

func (h *ScrimHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in service.CreateScrimInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	scrim, err := h.scrimService.Create(r.Context(), in)
	if err != nil {
		respondServiceError(w, h.logger, "scrim.Create", err)
		return
	}

	respondJSON(w, http.StatusOK, scrim)
}

// Update applies a partial update; omitted fields keep their stored values.
// Returns 404 when the scrim does not exist.
func (h *ScrimHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid scrim id", "id")
		return
	}

	var in service.UpdateScrimInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	scrim, err := h.scrimService.Update(r.Context(), id, in)
	if err != nil {
		respondServiceError(w, h.logger, "scrim.Update", err)
		return
	}

	respondJSON(w, http.StatusOK, scrim)
}

func (h *ScrimHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid scrim id", "id")
		return
	}

	if err := h.scrimService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, "scrim.Delete", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Statistics recomputes the full report from the current scrim and draft
// snapshots on every call.
func (h *ScrimHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statisticsService.Compute(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, "scrim.Statistics", err)
		return
	}

	respondJSON(w, http.StatusOK, stats)
}
