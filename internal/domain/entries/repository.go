package entries

import (
	"context"
	"time"
)

// Repository con todas las lecturas/escrituras scoped por owner: el acceso
// cruzado entre usuarios es imposible por construcción, no por chequeo en
// el handler.
type Repository interface {
	Create(ctx context.Context, e Entry) error
	GetByOwner(ctx context.Context, ownerUserID, id string) (Entry, error)
	ListByOwner(ctx context.Context, ownerUserID string, filter ListFilter) ([]Entry, error)
	Update(ctx context.Context, e Entry) error
	Delete(ctx context.Context, ownerUserID, id string) error
	DeleteAllByOwner(ctx context.Context, ownerUserID string) error
}

type ListFilter struct {
	Kinds []Kind
	From  *time.Time
	To    *time.Time
	Query string
	Limit int
}
