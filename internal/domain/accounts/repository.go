package accounts

import "context"

type Repository interface {
	Get(ctx context.Context, id string) (User, error)
	Upsert(ctx context.Context, u User) error
	Delete(ctx context.Context, id string) error
}
