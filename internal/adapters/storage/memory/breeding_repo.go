package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"tarantula-husbandry/internal/domain/breeding"
)

type breedingRepo struct {
	mu   sync.RWMutex
	byID map[string]breeding.BreedingEntry
}

func NewBreedingRepo() breeding.Repository {
	return &breedingRepo{
		byID: make(map[string]breeding.BreedingEntry),
	}
}

func (r *breedingRepo) Create(ctx context.Context, b breeding.BreedingEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if b.ID == "" {
		return errors.New("breeding entry id required")
	}
	if _, exists := r.byID[b.ID]; exists {
		return errors.New("breeding entry already exists")
	}

	r.byID[b.ID] = b
	return nil
}

func (r *breedingRepo) GetByOwner(ctx context.Context, ownerUserID, id string) (breeding.BreedingEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.byID[id]
	if !ok || b.OwnerUserID != ownerUserID {
		return breeding.BreedingEntry{}, breeding.ErrNotFound
	}
	return b, nil
}

func (r *breedingRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]breeding.BreedingEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]breeding.BreedingEntry, 0)
	for _, b := range r.byID {
		if b.OwnerUserID == ownerUserID {
			out = append(out, b)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].PairingDate.Equal(out[j].PairingDate) {
			return out[i].PairingDate.After(out[j].PairingDate)
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *breedingRepo) Update(ctx context.Context, b breeding.BreedingEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.byID[b.ID]
	if !ok || current.OwnerUserID != b.OwnerUserID {
		return breeding.ErrNotFound
	}
	r.byID[b.ID] = b
	return nil
}

func (r *breedingRepo) Delete(ctx context.Context, ownerUserID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.byID[id]
	if !ok || b.OwnerUserID != ownerUserID {
		return breeding.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *breedingRepo) DeleteAllByOwner(ctx context.Context, ownerUserID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, b := range r.byID {
		if b.OwnerUserID == ownerUserID {
			delete(r.byID, id)
		}
	}
	return nil
}
