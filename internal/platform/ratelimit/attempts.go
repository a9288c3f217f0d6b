package ratelimit

import (
	"sync"
	"time"
)

// AttemptStore registra intentos fallidos por key (identidad+IP) dentro de
// una ventana. Es una interfaz a propósito: hoy el deployment es
// single-process y alcanza con el map en memoria, pero en multi-instancia
// se cambia por un cache compartido tocando solo el wiring del router.
type AttemptStore interface {
	TooManyRecent(key string, now time.Time, limit int, window time.Duration) bool
	AddFailure(key string, now time.Time, window time.Duration)
	Reset(key string)
}

type memoryStore struct {
	mu       sync.Mutex
	attempts map[string][]time.Time
}

func NewMemoryStore() AttemptStore {
	return &memoryStore{attempts: make(map[string][]time.Time)}
}

func (s *memoryStore) TooManyRecent(key string, now time.Time, limit int, window time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pruneLocked(key, now, window)) >= limit
}

func (s *memoryStore) AddFailure(key string, now time.Time, window time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pruned := s.pruneLocked(key, now, window)
	pruned = append(pruned, now)
	s.attempts[key] = pruned
}

func (s *memoryStore) Reset(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.attempts, key)
}

func (s *memoryStore) pruneLocked(key string, now time.Time, window time.Duration) []time.Time {
	values := s.attempts[key]
	if len(values) == 0 {
		return nil
	}

	threshold := now.Add(-window)
	pruned := make([]time.Time, 0, len(values))
	for _, v := range values {
		if v.After(threshold) {
			pruned = append(pruned, v)
		}
	}

	if len(pruned) == 0 {
		delete(s.attempts, key)
		return nil
	}
	s.attempts[key] = pruned
	return pruned
}
