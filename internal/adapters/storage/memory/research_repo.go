package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"tarantula-husbandry/internal/domain/research"
)

type researchRepo struct {
	mu   sync.RWMutex
	byID map[string]research.Stack
}

func NewResearchRepo() research.Repository {
	return &researchRepo{
		byID: make(map[string]research.Stack),
	}
}

func (r *researchRepo) Create(ctx context.Context, s research.Stack) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s.ID == "" {
		return errors.New("stack id required")
	}
	if _, exists := r.byID[s.ID]; exists {
		return errors.New("stack already exists")
	}

	r.byID[s.ID] = s
	return nil
}

func (r *researchRepo) GetByOwner(ctx context.Context, ownerUserID, id string) (research.Stack, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok || s.OwnerUserID != ownerUserID {
		return research.Stack{}, research.ErrNotFound
	}
	return s, nil
}

func (r *researchRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]research.Stack, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]research.Stack, 0)
	for _, s := range r.byID {
		if s.OwnerUserID == ownerUserID {
			out = append(out, s)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].UpdatedAt.After(out[j].UpdatedAt)
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *researchRepo) Update(ctx context.Context, s research.Stack) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.byID[s.ID]
	if !ok || current.OwnerUserID != s.OwnerUserID {
		return research.ErrNotFound
	}
	r.byID[s.ID] = s
	return nil
}

func (r *researchRepo) Delete(ctx context.Context, ownerUserID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.byID[id]
	if !ok || s.OwnerUserID != ownerUserID {
		return research.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *researchRepo) DeleteAllByOwner(ctx context.Context, ownerUserID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, s := range r.byID {
		if s.OwnerUserID == ownerUserID {
			delete(r.byID, id)
		}
	}
	return nil
}
