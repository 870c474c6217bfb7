package store_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/lernapp/backend/internal/store"
)

func openTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()

	s, err := store.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLite_GetMissingKey(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Get("lernapp_users")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSQLite_SetAndGet(t *testing.T) {
	s := openTestStore(t)

	if err := s.Set("lernapp_users", `{"Ana":{"points":1}}`); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	got, err := s.Get("lernapp_users")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got != `{"Ana":{"points":1}}` {
		t.Errorf("unexpected value: %s", got)
	}
}

func TestSQLite_SetOverwrites(t *testing.T) {
	s := openTestStore(t)

	if err := s.Set("k", "one"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := s.Set("k", "two"); err != nil {
		t.Fatalf("second set failed: %v", err)
	}

	got, err := s.Get("k")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got != "two" {
		t.Errorf("expected %q, got %q", "two", got)
	}
}

func TestSQLite_Remove(t *testing.T) {
	s := openTestStore(t)

	if err := s.Set("k", "v"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := s.Remove("k"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}

	if _, err := s.Get("k"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound after remove, got %v", err)
	}

	// Removing an absent key is fine.
	if err := s.Remove("k"); err != nil {
		t.Errorf("removing absent key should not fail: %v", err)
	}
}
