// internal/api/router.go
package api

import "net/http"

// RegisterRoutes wires all handlers onto the mux.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Session
	mux.HandleFunc("POST /login", h.login)
	mux.HandleFunc("POST /logout", h.logout)
	mux.HandleFunc("POST /answers", h.submitAnswer)

	// Subjects
	mux.HandleFunc("GET /subjects", h.listSubjects)
	mux.HandleFunc("POST /subjects/{subject}/select", h.selectSubject)

	// Profile
	mux.HandleFunc("GET /profile", h.getProfile)
	mux.HandleFunc("PUT /profile/name", h.renameProfile)

	// Export
	mux.HandleFunc("GET /export", h.exportProgress)
}
