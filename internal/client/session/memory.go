package session

import (
	"context"
	"sync"
)

// MemoryStore keeps the session in process memory only.
type MemoryStore struct {
	mu sync.RWMutex
	s  Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{s: Empty()}
}

func (m *MemoryStore) Read(_ context.Context) (Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.s, nil
}

func (m *MemoryStore) WriteToken(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.s.Token = token
	return nil
}

func (m *MemoryStore) WriteSession(_ context.Context, userID int64, token, phone string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.s = Session{UserID: userID, Token: token, Phone: phone}
	return nil
}

func (m *MemoryStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.s = Empty()
	return nil
}
