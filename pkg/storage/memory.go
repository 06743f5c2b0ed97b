package storage

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/segmentio/encoding/json"
)

// Memory is an in-process Storage implementation. It serializes values the
// same way KV does, so tests exercise the real round trip.
type Memory struct {
	mu      sync.Mutex
	entries map[string]string
}

func NewMemory() *Memory {
	return &Memory{entries: map[string]string{}}
}

func (m *Memory) Load(_ context.Context, key string, v interface{}) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, ok := m.entries[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(data), v); err != nil {
		// Corrupt payload reads as no data.
		return false, nil
	}
	return true, nil
}

func (m *Memory) Save(_ context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.WithStack(err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = string(data)
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

// SetRaw stores a raw value without serializing it. Tests use it to stage
// corrupt payloads.
func (m *Memory) SetRaw(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
}

// Raw returns the stored value and whether the key exists.
func (m *Memory) Raw(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.entries[key]
	return data, ok
}
