package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/lernapp/backend/internal/domain/progress"
)

// ── Request / Response types ────────────────────────────────────────────────

type ExportData struct {
	Version    string       `json:"version"`
	ExportedAt string       `json:"exported_at"`
	Users      progress.Map `json:"users"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// GET /export
// Full dump of the current progress map for offline backup.
func (h *Handler) exportProgress(w http.ResponseWriter, r *http.Request) {
	exportData := ExportData{
		Version:    "1.0",
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Users:      h.repo.Snapshot(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", "attachment; filename=lernapp-export.json")
	json.NewEncoder(w).Encode(exportData)
}
