package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dom/league-team-hub/internal/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrorResponse is the structured payload returned for every rejected
// request.
type ErrorResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, message string, fields ...string) {
	respondJSON(w, status, ErrorResponse{Error: message, Fields: fields})
}

// respondServiceError maps service errors to HTTP responses: validation
// errors become 400 with the offending fields named, missing records become
// 404, and anything else is logged and surfaced as an opaque 500 so store
// diagnostics never leak to the caller.
func respondServiceError(w http.ResponseWriter, logger *zap.Logger, operation string, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		respondError(w, http.StatusBadRequest, verr.Message, verr.Fields...)
		return
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(w, http.StatusNotFound, "not found")
		return
	}

	logger.Error("request failed", zap.String("operation", operation), zap.Error(err))
	respondError(w, http.StatusInternalServerError, "internal error")
}
