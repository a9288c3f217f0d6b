package ratelimit

import (
	"testing"
	"time"
)

func TestMemoryStore_WindowAndLimit(t *testing.T) {
	store := NewMemoryStore()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	window := 15 * time.Minute

	if store.TooManyRecent("k", now, 3, window) {
		t.Fatalf("empty store should not limit")
	}

	store.AddFailure("k", now, window)
	store.AddFailure("k", now.Add(time.Minute), window)
	if store.TooManyRecent("k", now.Add(time.Minute), 3, window) {
		t.Fatalf("2 failures under limit 3 should pass")
	}

	store.AddFailure("k", now.Add(2*time.Minute), window)
	if !store.TooManyRecent("k", now.Add(2*time.Minute), 3, window) {
		t.Fatalf("3 failures at limit 3 should block")
	}

	// fuera de la ventana los intentos viejos se purgan
	later := now.Add(window + 3*time.Minute)
	if store.TooManyRecent("k", later, 3, window) {
		t.Fatalf("failures outside the window should not count")
	}
}

func TestMemoryStore_KeysAreIndependent(t *testing.T) {
	store := NewMemoryStore()
	now := time.Now()
	window := time.Minute

	for i := 0; i < 5; i++ {
		store.AddFailure("a", now, window)
	}
	if !store.TooManyRecent("a", now, 5, window) {
		t.Fatalf("a should be blocked")
	}
	if store.TooManyRecent("b", now, 5, window) {
		t.Fatalf("b should not be affected by a")
	}
}

func TestMemoryStore_Reset(t *testing.T) {
	store := NewMemoryStore()
	now := time.Now()
	window := time.Minute

	for i := 0; i < 5; i++ {
		store.AddFailure("k", now, window)
	}
	store.Reset("k")
	if store.TooManyRecent("k", now, 5, window) {
		t.Fatalf("reset should clear failures")
	}
}
