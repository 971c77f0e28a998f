package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/dom/league-team-hub/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SynergyHandler struct {
	synergyService *service.SynergyService
	logger         *zap.Logger
}

func NewSynergyHandler(synergyService *service.SynergyService, logger *zap.Logger) *SynergyHandler {
	return &SynergyHandler{synergyService: synergyService, logger: logger}
}

func (h *SynergyHandler) List(w http.ResponseWriter, r *http.Request) {
	synergies, err := h.synergyService.List(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, "synergy.List", err)
		return
	}

	respondJSON(w, http.StatusOK, synergies)
}

func (h *SynergyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in service.CreateSynergyInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	synergy, err := h.synergyService.Create(r.Context(), in)
	if err != nil {
		respondServiceError(w, h.logger, "synergy.Create", err)
		return
	}

	respondJSON(w, http.StatusOK, synergy)
}

func (h *SynergyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid synergy id", "id")
		return
	}

	if err := h.synergyService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, "synergy.Delete", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
