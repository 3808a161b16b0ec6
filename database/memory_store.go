package database

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryStore is an in-process Store for tests and local runs.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
	lists  map[string][]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values: make(map[string][]byte),
		lists:  make(map[string][]string),
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) (json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value json.RawMessage) error {
	v := make([]byte, len(value))
	copy(v, value)
	s.mu.Lock()
	s.values[key] = v
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) ListAppend(_ context.Context, listKey, id string) error {
	s.mu.Lock()
	s.lists[listKey] = append(s.lists[listKey], id)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) ListRange(_ context.Context, listKey string, start, end int64) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := s.lists[listKey]
	lo, hi, ok := rangeBounds(int64(len(list)), start, end)
	if !ok {
		return []string{}, nil
	}
	out := make([]string, hi-lo)
	copy(out, list[lo:hi])
	return out, nil
}

func (s *MemoryStore) Ping(context.Context) error { return nil }
