package memory

import (
	"context"
	"sync"
)

// LastSeenStore - последняя дата по сервису в памяти процесса. Теряется при рестарте.
type LastSeenStore struct {
	mu    sync.RWMutex
	terms map[string]string
}

func NewLastSeenStore() *LastSeenStore {
	return &LastSeenStore{terms: make(map[string]string)}
}

func (s *LastSeenStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	term, ok := s.terms[key]
	return term, ok, nil
}

func (s *LastSeenStore) Set(_ context.Context, key, term string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.terms[key] = term
	return nil
}

func (s *LastSeenStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.terms, key)
	return nil
}
