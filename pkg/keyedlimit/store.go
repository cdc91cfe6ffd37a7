// Package keyedlimit provides a keyed attempt store with a sliding TTL
// window. It replaces ad-hoc process-wide rate-limiting maps with an explicit
// interface, so callers never reach into shared mutable state directly.
package keyedlimit

import (
	"sync"
	"time"
)

type Store interface {
	Record(key string)
	IsBlocked(key string) bool
	Reset(key string)
}

type bucket struct {
	count    int
	windowAt time.Time
}

type memoryStore struct {
	mu      sync.Mutex
	buckets map[string]*bucket

	maxAttempts int
	window      time.Duration
	now         func() time.Time
}

// NewMemoryStore blocks a key after maxAttempts records within window.
// The window restarts once it elapses.
func NewMemoryStore(maxAttempts int, window time.Duration) Store {
	return &memoryStore{
		buckets:     make(map[string]*bucket),
		maxAttempts: maxAttempts,
		window:      window,
		now:         time.Now,
	}
}

func (s *memoryStore) Record(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.buckets[key]
	if !ok || s.now().After(b.windowAt.Add(s.window)) {
		s.buckets[key] = &bucket{count: 1, windowAt: s.now()}
		return
	}
	b.count++
}

func (s *memoryStore) IsBlocked(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.buckets[key]
	if !ok {
		return false
	}
	if s.now().After(b.windowAt.Add(s.window)) {
		delete(s.buckets, key)
		return false
	}
	return b.count >= s.maxAttempts
}

func (s *memoryStore) Reset(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.buckets, key)
}
