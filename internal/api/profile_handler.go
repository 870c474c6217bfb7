package api

import "net/http"

// ── Request / Response types ────────────────────────────────────────────────

type ProfileResponse struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
}

type RenameRequest struct {
	Name string `json:"name"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// GET /profile
func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	name, record, err := h.controller.Profile()
	if h.handleServiceError(w, err) {
		return
	}

	respondJSON(w, http.StatusOK, ProfileResponse{
		Name:   name,
		Points: record.Points,
	})
}

// PUT /profile/name
func (h *Handler) renameProfile(w http.ResponseWriter, r *http.Request) {
	var req RenameRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	record, err := h.controller.Rename(req.Name)
	if h.handleServiceError(w, err) {
		return
	}

	name, _, err := h.controller.Profile()
	if h.handleServiceError(w, err) {
		return
	}

	respondJSON(w, http.StatusOK, ProfileResponse{
		Name:   name,
		Points: record.Points,
	})
}
