package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"tarantula-husbandry/internal/domain/entries"
)

type entriesRepo struct {
	mu   sync.RWMutex
	byID map[string]entries.Entry
}

func NewEntriesRepo() entries.Repository {
	return &entriesRepo{
		byID: make(map[string]entries.Entry),
	}
}

func (r *entriesRepo) Create(ctx context.Context, e entries.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e.ID == "" {
		return errors.New("entry id required")
	}
	if _, exists := r.byID[e.ID]; exists {
		return errors.New("entry already exists")
	}

	r.byID[e.ID] = e
	return nil
}

func (r *entriesRepo) GetByOwner(ctx context.Context, ownerUserID, id string) (entries.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byID[id]
	if !ok || e.OwnerUserID != ownerUserID {
		return entries.Entry{}, entries.ErrNotFound
	}
	return e, nil
}

func (r *entriesRepo) ListByOwner(ctx context.Context, ownerUserID string, filter entries.ListFilter) ([]entries.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entries.Entry, 0)

	for _, e := range r.byID {
		if e.OwnerUserID != ownerUserID {
			continue
		}

		if len(filter.Kinds) > 0 {
			ok := false
			for _, k := range filter.Kinds {
				if e.Kind == k {
					ok = true
					break
				}
			}
			if !ok {
				continue
			}
		}

		if filter.From != nil && e.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && e.Date.After(*filter.To) {
			continue
		}

		if q := strings.TrimSpace(filter.Query); q != "" {
			hay := strings.ToLower(e.Specimen + " " + e.Species + " " + e.Notes)
			if !strings.Contains(hay, strings.ToLower(q)) {
				continue
			}
		}

		out = append(out, e)
	}

	// Orden por date desc, desempate por id para salida estable
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})

	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}

	return out, nil
}

func (r *entriesRepo) Update(ctx context.Context, e entries.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.byID[e.ID]
	if !ok || current.OwnerUserID != e.OwnerUserID {
		return entries.ErrNotFound
	}
	r.byID[e.ID] = e
	return nil
}

func (r *entriesRepo) Delete(ctx context.Context, ownerUserID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.byID[id]
	if !ok || e.OwnerUserID != ownerUserID {
		return entries.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *entriesRepo) DeleteAllByOwner(ctx context.Context, ownerUserID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, e := range r.byID {
		if e.OwnerUserID == ownerUserID {
			delete(r.byID, id)
		}
	}
	return nil
}
