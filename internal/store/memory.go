package store

import "sync"

// MemoryStore is an in-memory LocalStore for tests. SetErr, when non-nil, is
// returned by every Set call, which lets tests simulate a store that rejects
// writes without losing the data already held.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string

	SetErr error
}

var _ LocalStore = (*MemoryStore)(nil)

func NewMemory() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Get(key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (m *MemoryStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SetErr != nil {
		return m.SetErr
	}
	m.values[key] = value
	return nil
}

func (m *MemoryStore) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}
