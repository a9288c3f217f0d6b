package memory

import (
	"context"
	"errors"
	"sync"

	"tarantula-husbandry/internal/domain/accounts"
)

type usersRepo struct {
	mu   sync.RWMutex
	byID map[string]accounts.User
}

func NewUsersRepo() accounts.Repository {
	return &usersRepo{
		byID: make(map[string]accounts.User),
	}
}

func (r *usersRepo) Get(ctx context.Context, id string) (accounts.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return accounts.User{}, accounts.ErrNotFound
	}
	return u, nil
}

func (r *usersRepo) Upsert(ctx context.Context, u accounts.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if u.ID == "" {
		return errors.New("user id required")
	}
	r.byID[u.ID] = u
	return nil
}

func (r *usersRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return accounts.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
