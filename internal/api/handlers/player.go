package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/dom/league-team-hub/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PlayerHandler struct {
	playerService *service.PlayerService
	logger        *zap.Logger
}

func NewPlayerHandler(playerService *service.PlayerService, logger *zap.Logger) *PlayerHandler {
	return &PlayerHandler{playerService: playerService, logger: logger}
}

type CreatePlayerRequest struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	players, err := h.playerService.List(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, "player.List", err)
		return
	}

	respondJSON(w, http.StatusOK, players)
}

func (h *PlayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreatePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	player, err := h.playerService.Create(r.Context(), req.Name, req.Role)
	if err != nil {
		respondServiceError(w, h.logger, "player.Create", err)
		return
	}

	respondJSON(w, http.StatusOK, player)
}

// Delete removes the player along with its availability records.
func (h *PlayerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid player id", "id")
		return
	}

	if err := h.playerService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, "player.Delete", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

type UpsertAvailabilityRequest struct {
	PlayerID    string `json:"playerId"`
	DayOfWeek   *int   `json:"dayOfWeek"`
	IsAvailable bool   `json:"isAvailable"`
}

func (h *PlayerHandler) ListAvailability(w http.ResponseWriter, r *http.Request) {
	availability, err := h.playerService.ListAvailability(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, "player.ListAvailability", err)
		return
	}

	respondJSON(w, http.StatusOK, availability)
}

// UpsertAvailability writes the flag for one (player, day) pair. Repeating
// the same request overwrites the record rather than duplicating it.
func (h *PlayerHandler) UpsertAvailability(w http.ResponseWriter, r *http.Request) {
	var req UpsertAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	playerID, err := uuid.Parse(req.PlayerID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "playerId is required", "playerId")
		return
	}
	if req.DayOfWeek == nil {
		respondError(w, http.StatusBadRequest, "dayOfWeek must be between 0 and 6", "dayOfWeek")
		return
	}

	availability, err := h.playerService.SetAvailability(r.Context(), playerID, *req.DayOfWeek, req.IsAvailable)
	if err != nil {
		respondServiceError(w, h.logger, "player.UpsertAvailability", err)
		return
	}

	respondJSON(w, http.StatusOK, availability)
}
