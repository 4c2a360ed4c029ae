// Package memory is an in-process KeyValue used by tests and by the memory
// backend. Nothing survives the process.
package memory

import (
	"context"
	"sync"

	"speseview/internal/storage"
)

type Store struct {
	mu     sync.Mutex
	items  map[string][]byte
	writes int
}

func New() *Store {
	return &Store{items: make(map[string][]byte)}
}

// NewSeeded returns a store pre-filled with raw values, e.g. to simulate
// whatever a previous run left behind.
func NewSeeded(seed map[string]string) *Store {
	s := New()
	for k, v := range seed {
		s.items[k] = []byte(v)
	}
	return s
}

// Get implements storage.KeyValue
func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.items[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

// Put implements storage.KeyValue
func (s *Store) Put(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = append([]byte(nil), value...)
	s.writes++
	return nil
}

// Writes returns how many times Put was called.
func (s *Store) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}
