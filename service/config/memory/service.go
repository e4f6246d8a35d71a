package memory

import (
	"context"
	"sync"

	"github.com/viant/ownfm/service/config"
)

// Service is an in-memory config.Store, used for ephemeral sessions and tests.
type Service[T any] struct {
	mu    sync.RWMutex
	value *T
	saves int
}

// Load returns a copy of the saved document.
func (s *Service[T]) Load(_ context.Context) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.value == nil {
		return nil, config.ErrNotFound
	}
	ret := *s.value
	return &ret, nil
}

// Save stores a copy of t.
func (s *Service[T]) Save(_ context.Context, t *T) error {
	if t == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	value := *t
	s.value = &value
	s.saves++
	return nil
}

// Saves returns how many times Save was called.
func (s *Service[T]) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}

// New creates a store, optionally seeded with an initial document.
func New[T any](initial *T) *Service[T] {
	ret := &Service[T]{}
	if initial != nil {
		value := *initial
		ret.value = &value
	}
	return ret
}
