package session

import (
	"context"
	"sync"
)

// MemoryStore is the non-durable Store used by tests and demo mode.
type MemoryStore struct {
	mu    sync.Mutex
	slots map[string]string
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[string]string)}
}

func (s *MemoryStore) Save(ctx context.Context, access, refresh string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.put(keyAccessToken, access)
	s.put(keyRefreshToken, refresh)
	return nil
}

func (s *MemoryStore) SaveAccessToken(ctx context.Context, access string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.put(keyAccessToken, access)
	return nil
}

func (s *MemoryStore) AccessToken(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.slots[keyAccessToken], nil
}

func (s *MemoryStore) RefreshToken(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.slots[keyRefreshToken], nil
}

func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots = make(map[string]string)
	return nil
}

func (s *MemoryStore) put(key, value string) {
	if value == "" {
		delete(s.slots, key)
		return
	}
	s.slots[key] = value
}
