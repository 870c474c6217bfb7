// Package repository owns the merged user/points map and every mutation of
// it. After a successful mutation the in-memory map and the local store never
// diverge; after a failed persist the in-memory map stays authoritative.
package repository

import (
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"github.com/lernapp/backend/internal/domain/progress"
	"github.com/lernapp/backend/internal/store"
)

// ProgressKey is the single well-known store key for the progress map.
const ProgressKey = "lernapp_users"

var (
	ErrInvalidName = errors.New("invalid name")
	ErrUnknownUser = errors.New("unknown user")
	ErrNameTaken   = errors.New("name already taken")
)

// RenamePolicy decides what happens when a rename targets an existing name.
type RenamePolicy int

const (
	// RenameReject refuses the rename with ErrNameTaken, keeping both records.
	RenameReject RenamePolicy = iota
	// RenameOverwrite discards the target record, last write wins.
	RenameOverwrite
)

// ProgressRepository is the single source of truth for user existence,
// points, and renaming.
type ProgressRepository struct {
	store         store.LocalStore
	logger        *slog.Logger
	defaultPoints int
	policy        RenamePolicy

	mu    sync.Mutex
	users progress.Map
}

// NewProgress builds the repository: it loads the locally persisted map from
// the store, merges it over the dataset seed (local wins per name), and keeps
// the merged map as the working state. A missing or malformed stored value is
// treated as empty — losing stale local data is preferred over refusing to
// start.
func NewProgress(s store.LocalStore, seed progress.Map, settings progress.Settings, policy RenamePolicy, logger *slog.Logger) *ProgressRepository {
	local := loadLocal(s, logger)

	return &ProgressRepository{
		store:         s,
		logger:        logger,
		defaultPoints: settings.DefaultPoints,
		policy:        policy,
		users:         progress.Merge(seed, local),
	}
}

func loadLocal(s store.LocalStore, logger *slog.Logger) progress.Map {
	raw, err := s.Get(ProgressKey)
	if errors.Is(err, store.ErrNotFound) {
		return progress.Map{}
	}
	if err != nil {
		logger.Warn("could not read local progress, starting from seed only", "error", err)
		return progress.Map{}
	}

	var local progress.Map
	if err := json.Unmarshal([]byte(raw), &local); err != nil {
		logger.Warn("local progress is malformed, starting from seed only", "error", err)
		return progress.Map{}
	}
	return local
}

// EnsureUser returns the record for name, creating it with the default
// points when the name is unknown. The caller trims; an empty name is
// rejected with ErrInvalidName.
func (r *ProgressRepository) EnsureUser(name string) (progress.UserProgress, error) {
	if name == "" {
		return progress.UserProgress{}, ErrInvalidName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if record, ok := r.users[name]; ok {
		return record, nil
	}

	record := progress.UserProgress{Points: r.defaultPoints}
	r.users[name] = record
	r.persistLocked()
	return record, nil
}

// Award adds delta to an existing user's points, clamped at zero, persists,
// and returns the updated record. Unknown names are rejected.
func (r *ProgressRepository) Award(name string, delta int) (progress.UserProgress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.users[name]
	if !ok {
		return progress.UserProgress{}, ErrUnknownUser
	}

	record.Points += delta
	if record.Points < 0 {
		record.Points = 0
	}

	r.users[name] = record
	r.persistLocked()
	return record, nil
}

// Rename moves the record from oldName to newName and frees the old key.
// Renaming to the same name is a no-op success. What happens when newName
// already has a record depends on the configured RenamePolicy.
func (r *ProgressRepository) Rename(oldName, newName string) (progress.UserProgress, error) {
	if newName == "" {
		return progress.UserProgress{}, ErrInvalidName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.users[oldName]
	if !ok {
		return progress.UserProgress{}, ErrUnknownUser
	}

	if newName == oldName {
		return record, nil
	}

	if _, taken := r.users[newName]; taken && r.policy == RenameReject {
		return progress.UserProgress{}, ErrNameTaken
	}

	r.users[newName] = record
	delete(r.users, oldName)
	r.persistLocked()
	return record, nil
}

// Get returns the record for name without creating it.
func (r *ProgressRepository) Get(name string) (progress.UserProgress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.users[name]
	if !ok {
		return progress.UserProgress{}, ErrUnknownUser
	}
	return record, nil
}

// Snapshot returns an independent copy of the full progress map.
func (r *ProgressRepository) Snapshot() progress.Map {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.users.Clone()
}

// persistLocked writes the full map through to the store. A failed write is
// logged and otherwise ignored: durability is lost for this run but the
// in-memory state keeps serving the session. Callers must hold r.mu.
func (r *ProgressRepository) persistLocked() {
	raw, err := json.Marshal(r.users)
	if err != nil {
		r.logger.Warn("could not serialize progress", "error", err)
		return
	}
	if err := r.store.Set(ProgressKey, string(raw)); err != nil {
		r.logger.Warn("could not persist progress, keeping in-memory state", "error", err)
	}
}
