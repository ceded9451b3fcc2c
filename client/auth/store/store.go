package store

import (
	"context"
	"sync"
)

// Store is a pluggable persistence layer for the session tokens.
// Read reports ok=false when no session is stored; the error is reserved for
// backend failures.
type Store interface {
	Save(ctx context.Context, accessToken, refreshToken string) error
	Read(ctx context.Context) (*Session, bool, error)
	Clear(ctx context.Context) error
}

type memoryStore struct {
	mu      sync.RWMutex
	session *Session
}

func (m *memoryStore) Save(_ context.Context, accessToken, refreshToken string) error {
	session, err := NewSession(accessToken, refreshToken)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = session
	return nil
}

func (m *memoryStore) Read(_ context.Context) (*Session, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.session == nil {
		return nil, false, nil
	}
	ret := *m.session
	return &ret, true, nil
}

func (m *memoryStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = nil
	return nil
}

// NewMemoryStore creates an in-memory store
func NewMemoryStore() Store {
	return &memoryStore{}
}
