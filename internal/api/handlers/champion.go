package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/dom/league-team-hub/internal/domain"
	"github.com/dom/league-team-hub/internal/service"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ChampionHandler struct {
	championService *service.ChampionService
	logger          *zap.Logger
}

func NewChampionHandler(championService *service.ChampionService, logger *zap.Logger) *ChampionHandler {
	return &ChampionHandler{championService: championService, logger: logger}
}

// GetAll returns every champion with its evaluation attached when one
// exists; champions without an evaluation omit the field entirely.
func (h *ChampionHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	champions, err := h.championService.ListWithEvaluations(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, "champion.GetAll", err)
		return
	}

	respondJSON(w, http.StatusOK, champions)
}

type UpdateRolesRequest struct {
	Roles *[]domain.Role `json:"roles"`
}

// UpdateRoles replaces a champion's role set. Returns 400 when roles is not
// an array or contains an unknown token, 404 when the champion id is
// unknown.
func (h *ChampionHandler) UpdateRoles(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateRolesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Roles == nil {
		respondError(w, http.StatusBadRequest, "roles must be an array", "roles")
		return
	}

	champion, err := h.championService.UpdateRoles(r.Context(), id, *req.Roles)
	if err != nil {
		respondServiceError(w, h.logger, "champion.UpdateRoles", err)
		return
	}

	respondJSON(w, http.StatusOK, champion)
}

type EvaluateRequest struct {
	ChampionID string `json:"championId"`
	domain.EvaluationPatch
}

// Evaluate merges the submitted subset of rating fields into the
// champion's evaluation. Omitted fields keep their stored values (zero
// when the evaluation did not exist yet).
func (h *ChampionHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var req EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	evaluation, err := h.championService.Evaluate(r.Context(), req.ChampionID, req.EvaluationPatch)
	if err != nil {
		respondServiceError(w, h.logger, "champion.Evaluate", err)
		return
	}

	respondJSON(w, http.StatusOK, evaluation)
}
