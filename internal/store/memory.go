// Package store persists booking sessions between requests.
package store

import (
	"context"
	"sync"

	"github.com/iliyamo/resort-booking/internal/booking"
)

// MemoryStore keeps sessions in process memory. It is used when Redis is not
// reachable and in tests; sessions do not expire.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]booking.Session
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]booking.Session)}
}

func (m *MemoryStore) Get(_ context.Context, id string) (booking.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return booking.Session{}, booking.ErrSessionNotFound
	}
	return s, nil
}

func (m *MemoryStore) Save(_ context.Context, s booking.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}
