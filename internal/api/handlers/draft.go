package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/dom/league-team-hub/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type DraftHandler struct {
	draftService *service.DraftService
	logger       *zap.Logger
}

func NewDraftHandler(draftService *service.DraftService, logger *zap.Logger) *DraftHandler {
	return &DraftHandler{draftService: draftService, logger: logger}
}

// List returns every draft with variants attached and role slots resolved
// to champion records where the referenced champion still exists.
func (h *DraftHandler) List(w http.ResponseWriter, r *http.Request) {
	drafts, err := h.draftService.ListWithDetails(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, "draft.List", err)
		return
	}

	respondJSON(w, http.StatusOK, drafts)
}

func (h *DraftHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in service.DraftInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	draft, err := h.draftService.Create(r.Context(), in)
	if err != nil {
		respondServiceError(w, h.logger, "draft.Create", err)
		return
	}

	respondJSON(w, http.StatusOK, draft)
}

// Update replaces the draft's mutable fields. Returns 404 when the draft
// does not exist.
func (h *DraftHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid draft id", "id")
		return
	}

	var in service.DraftInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	draft, err := h.draftService.Update(r.Context(), id, in)
	if err != nil {
		respondServiceError(w, h.logger, "draft.Update", err)
		return
	}

	respondJSON(w, http.StatusOK, draft)
}

// Delete removes the draft and its variants. Deleting an unknown id is a
// no-op and still reports success.
func (h *DraftHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid draft id", "id")
		return
	}

	if err := h.draftService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, "draft.Delete", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *DraftHandler) CreateVariant(w http.ResponseWriter, r *http.Request) {
	draftID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid draft id", "id")
		return
	}

	var in service.VariantInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	variant, err := h.draftService.AddVariant(r.Context(), draftID, in)
	if err != nil {
		respondServiceError(w, h.logger, "draft.CreateVariant", err)
		return
	}

	respondJSON(w, http.StatusOK, variant)
}

func (h *DraftHandler) DeleteVariant(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "variantId"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid variant id", "variantId")
		return
	}

	if err := h.draftService.DeleteVariant(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, "draft.DeleteVariant", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
