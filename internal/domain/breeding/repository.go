package breeding

import "context"

type Repository interface {
	Create(ctx context.Context, b BreedingEntry) error
	GetByOwner(ctx context.Context, ownerUserID, id string) (BreedingEntry, error)
	ListByOwner(ctx context.Context, ownerUserID string) ([]BreedingEntry, error)
	Update(ctx context.Context, b BreedingEntry) error
	Delete(ctx context.Context, ownerUserID, id string) error
	DeleteAllByOwner(ctx context.Context, ownerUserID string) error
}
