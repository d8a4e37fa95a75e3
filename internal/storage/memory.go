package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/DVDHSN/EcoBudget/internal/common"
)

// MemoryStore is an in-memory Store for tests. Values round-trip through
// JSON so serialization behaves exactly like the SQLite store.
type MemoryStore struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[string][]byte)}
}

// Get unmarshals the stored blob into dest.
func (m *MemoryStore) Get(_ context.Context, key string, dest any) error {
	m.mu.RLock()
	raw, ok := m.slots[key]
	m.mu.RUnlock()
	if !ok {
		return common.ErrNotFound
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("failed to decode slot %q: %w", key, err)
	}
	return nil
}

// Set stores value under key.
func (m *MemoryStore) Set(_ context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode slot %q: %w", key, err)
	}
	m.mu.Lock()
	m.slots[key] = raw
	m.mu.Unlock()
	return nil
}

// Delete removes a slot.
func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.slots, key)
	m.mu.Unlock()
	return nil
}

// Close is a no-op for the in-memory store.
func (m *MemoryStore) Close() error {
	return nil
}

// Keys returns the currently populated slot keys, for test assertions.
func (m *MemoryStore) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.slots))
	for k := range m.slots {
		keys = append(keys, k)
	}
	return keys
}
