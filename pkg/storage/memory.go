package storage

import (
	"context"
	"encoding/json"

	pkgerrors "github.com/oscarnavarro/showroom/pkg/errors"
)

// MemoryStore is the in-memory Store used by tests and the memory driver.
// Values round-trip through JSON so corrupt-value behavior can be exercised
// by seeding raw strings.
type MemoryStore struct {
	entries map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: map[string]string{}}
}

// Seed places a raw JSON string under key, bypassing encoding. Tests use it
// to simulate corrupt persisted values.
func (m *MemoryStore) Seed(key, raw string) {
	m.entries[key] = raw
}

// Len reports how many keys currently hold values.
func (m *MemoryStore) Len() int { return len(m.entries) }

func (m *MemoryStore) Get(_ context.Context, key string, out any) (bool, error) {
	raw, ok := m.entries[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "decode "+key)
	}
	return true, nil
}

func (m *MemoryStore) Set(_ context.Context, key string, value any) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeStorage, err, "encode "+key)
	}
	m.entries[key] = string(encoded)
	return nil
}

func (m *MemoryStore) Remove(_ context.Context, key string) error {
	delete(m.entries, key)
	return nil
}
