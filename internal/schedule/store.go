package schedule

import (
	"context"
	"encoding/json"
	"sync"
)

// Persisted keys.
const (
	KeyScheduleData = "schedule-data"
	KeyBaseTemplate = "base-template"
	KeyAutoSeed     = "auto-seed-flag"
	KeyNotes        = "notes"
)

// Store is a key/value persistence backend. Values are JSON documents.
type Store interface {
	// Get returns the raw value for key and whether it exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Put writes value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error

	// Close releases any resources held by the store.
	Close() error
}

// MemoryStore is an in-process Store.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

// Get implements Store.
func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

// Put implements Store.
func (m *MemoryStore) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	m.data[key] = v
	return nil
}

// Close implements Store.
func (m *MemoryStore) Close() error {
	return nil
}

// loadJSON decodes key into dst. It reports false when the key is missing
// or its value cannot be decoded, leaving dst for the caller to default.
func loadJSON(ctx context.Context, store Store, key string, dst any) (bool, error) {
	raw, ok, err := store.Get(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, err
	}
	return true, nil
}

func saveJSON(ctx context.Context, store Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return store.Put(ctx, key, raw)
}
