package health

import "context"

type Repository interface {
	Create(ctx context.Context, h HealthEntry) error
	GetByOwner(ctx context.Context, ownerUserID, id string) (HealthEntry, error)
	ListByOwner(ctx context.Context, ownerUserID string) ([]HealthEntry, error)
	Update(ctx context.Context, h HealthEntry) error
	Delete(ctx context.Context, ownerUserID, id string) error
	DeleteAllByOwner(ctx context.Context, ownerUserID string) error
}
