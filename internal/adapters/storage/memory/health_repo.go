package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"tarantula-husbandry/internal/domain/health"
)

type healthRepo struct {
	mu   sync.RWMutex
	byID map[string]health.HealthEntry
}

func NewHealthRepo() health.Repository {
	return &healthRepo{
		byID: make(map[string]health.HealthEntry),
	}
}

func (r *healthRepo) Create(ctx context.Context, h health.HealthEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if h.ID == "" {
		return errors.New("health entry id required")
	}
	if _, exists := r.byID[h.ID]; exists {
		return errors.New("health entry already exists")
	}

	r.byID[h.ID] = h
	return nil
}

func (r *healthRepo) GetByOwner(ctx context.Context, ownerUserID, id string) (health.HealthEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.byID[id]
	if !ok || h.OwnerUserID != ownerUserID {
		return health.HealthEntry{}, health.ErrNotFound
	}
	return h, nil
}

func (r *healthRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]health.HealthEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]health.HealthEntry, 0)
	for _, h := range r.byID {
		if h.OwnerUserID == ownerUserID {
			out = append(out, h)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *healthRepo) Update(ctx context.Context, h health.HealthEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.byID[h.ID]
	if !ok || current.OwnerUserID != h.OwnerUserID {
		return health.ErrNotFound
	}
	r.byID[h.ID] = h
	return nil
}

func (r *healthRepo) Delete(ctx context.Context, ownerUserID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.byID[id]
	if !ok || h.OwnerUserID != ownerUserID {
		return health.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *healthRepo) DeleteAllByOwner(ctx context.Context, ownerUserID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, h := range r.byID {
		if h.OwnerUserID == ownerUserID {
			delete(r.byID, id)
		}
	}
	return nil
}
