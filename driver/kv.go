// Package driver provides the key-value persistence port the cart store
// writes through, along with its in-memory, Redis and Postgres backends.
package driver

import (
	"context"
	"sync"
)

// KV is a synchronous key-value primitive. Get reports absence through its
// second return value instead of an error, so callers can treat a missing
// key as an empty state.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}

var _ KV = (*Memory)(nil)

// Memory is the in-process KV backend. It is the default for tests and for
// sessions that do not outlive the page.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.values[key]
	return value, ok, nil
}

func (m *Memory) Set(_ context.Context, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}
