package store

import "errors"

var (
	ErrNotFound = errors.New("not found")
)

// LocalStore is a persistent string-keyed store. The progress map lives under
// a single well-known key; the store itself knows nothing about its content.
// Implementations may fail on Set (disk full, permissions) — callers decide
// whether that is fatal.
type LocalStore interface {
	// Get returns the stored value, or ErrNotFound.
	Get(key string) (string, error)
	// Set writes the value, replacing any previous one.
	Set(key, value string) error
	// Remove deletes the key. Removing an absent key is not an error.
	Remove(key string) error
}
