package research

import "context"

type Repository interface {
	Create(ctx context.Context, s Stack) error
	GetByOwner(ctx context.Context, ownerUserID, id string) (Stack, error)
	ListByOwner(ctx context.Context, ownerUserID string) ([]Stack, error)
	Update(ctx context.Context, s Stack) error
	Delete(ctx context.Context, ownerUserID, id string) error
	DeleteAllByOwner(ctx context.Context, ownerUserID string) error
}
