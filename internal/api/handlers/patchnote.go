package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/dom/league-team-hub/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PatchNoteHandler struct {
	patchNoteService *service.PatchNoteService
	logger           *zap.Logger
}

func NewPatchNoteHandler(patchNoteService *service.PatchNoteService, logger *zap.Logger) *PatchNoteHandler {
	return &PatchNoteHandler{patchNoteService: patchNoteService, logger: logger}
}

// List returns patch notes newest first.
func (h *PatchNoteHandler) List(w http.ResponseWriter, r *http.Request) {
	notes, err := h.patchNoteService.List(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, "patchnote.List", err)
		return
	}

	respondJSON(w, http.StatusOK, notes)
}

func (h *PatchNoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in service.CreatePatchNoteInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	note, err := h.patchNoteService.Create(r.Context(), in)
	if err != nil {
		respondServiceError(w, h.logger, "patchnote.Create", err)
		return
	}

	respondJSON(w, http.StatusOK, note)
}

func (h *PatchNoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid patch note id", "id")
		return
	}

	if err := h.patchNoteService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, "patchnote.Delete", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
