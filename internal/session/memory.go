// Copyright (c) 2026 Roster Team
// Roster - user directory client
// This source code is licensed under the MIT license found in the LICENSE file.

package session

import (
	"context"
	"sync"
)

// MemoryStore keeps the token in process memory only. Delete wipes it.
type MemoryStore struct {
	mu    sync.RWMutex
	value Secret
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load(context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.value.Reveal(), nil
}

// Save stores a copy of token, wiping the previous one.
func (m *MemoryStore) Save(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.wipe()
	if token != "" {
		m.value = Secret(token)
	}
	return nil
}

func (m *MemoryStore) Delete(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.wipe()
	return nil
}

func (m *MemoryStore) Close() error {
	return m.Delete(context.Background())
}

func (m *MemoryStore) wipe() {
	m.value.Zero()
}
