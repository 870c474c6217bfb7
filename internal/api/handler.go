// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/lernapp/backend/internal/repository"
	"github.com/lernapp/backend/internal/service"
)

// Handler holds all dependencies needed by HTTP handlers.
// Instead of relying on package-level globals, every handler method
// receives its dependencies through this struct.
type Handler struct {
	controller *service.SessionController
	repo       *repository.ProgressRepository
	logger     *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(c *service.SessionController, repo *repository.ProgressRepository, logger *slog.Logger) *Handler {
	return &Handler{
		controller: c,
		repo:       repo,
		logger:     logger,
	}
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError writes a JSON error body with the given status code.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// decodeJSON decodes the request body into v. Returns false after writing a
// 400 response when the body is not valid JSON (caller should return).
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

// handleServiceError maps core errors to HTTP responses. Returns true if an
// error was handled (caller should return).
func (h *Handler) handleServiceError(w http.ResponseWriter, err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, repository.ErrInvalidName):
		respondError(w, http.StatusBadRequest, "name must not be empty")
	case errors.Is(err, repository.ErrNameTaken):
		respondError(w, http.StatusConflict, "name already taken")
	case errors.Is(err, repository.ErrUnknownUser):
		respondError(w, http.StatusNotFound, "unknown user")
	case errors.Is(err, service.ErrNoActiveSession):
		respondError(w, http.StatusUnauthorized, "not logged in")
	case errors.Is(err, service.ErrNoPendingQuestion):
		respondError(w, http.StatusConflict, "no question awaiting an answer")
	default:
		h.logger.Error("internal error", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
	return true
}
