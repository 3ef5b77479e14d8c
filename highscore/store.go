// Package highscore persists the best kill count across sessions.
package highscore

import (
	"context"
	"sync"
)

// Store loads and saves the best kill count.
// Load returns 0 when nothing has been saved yet.
type Store interface {
	Load(ctx context.Context) (int, error)
	Save(ctx context.Context, kills int) error
}

// MemoryStore keeps the score in memory. The zero value is ready to use.
type MemoryStore struct {
	mu    sync.Mutex
	kills int
	saves int
}

// Load implements Store.
func (m *MemoryStore) Load(context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.kills, nil
}

// Save implements Store.
func (m *MemoryStore) Save(_ context.Context, kills int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.kills = kills
	m.saves++
	return nil
}

// Saves returns how many times Save was called.
func (m *MemoryStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
