// Package snapshot provides the key-value capability the auth manager uses
// to persist its session snapshot. The interface is deliberately tiny so the
// manager stays testable without any host storage.
package snapshot

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is returned by Get when the key has no value in scope.
var ErrNotFound = errors.New("snapshot: key not found")

// Store is a scoped string key-value capability.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// Memory is an in-process Store. It mirrors the scoping of browser session
// storage: values survive as long as the process, never longer.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemory returns an empty in-process snapshot store.
func NewMemory() *Memory {
	return &Memory{values: map[string]string{}}
}

func (m *Memory) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *Memory) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}
