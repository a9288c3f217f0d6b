package entries

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("entry not found")
)

// Syncer notifica cambios de entries molt hacia afuera (webhook).
// La implementación es fire-and-forget: nunca bloquea ni falla el request.
type Syncer interface {
	EntryChanged(e Entry)
}

type Service struct {
	repo   Repository
	syncer Syncer // puede ser nil
	now    func() time.Time
}

func NewService(repo Repository, syncer Syncer) *Service {
	return &Service{
		repo:   repo,
		syncer: syncer,
		now:    time.Now,
	}
}

// Create normaliza el body crudo y persiste un entry nuevo bajo ownerUserID.
// Errores de validación salen como *coerce.FieldError (errors.As en el handler).
func (s *Service) Create(ctx context.Context, ownerUserID string, raw map[string]any) (Entry, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return Entry{}, ErrInvalidInput
	}

	now := s.now().UTC()
	e, ferr := Normalize(raw, now)
	if ferr != nil {
		return Entry{}, ferr
	}

	e.ID = uuid.NewString()
	e.OwnerUserID = ownerUserID
	e.CreatedAt = now
	e.UpdatedAt = now

	if err := s.repo.Create(ctx, e); err != nil {
		return Entry{}, err
	}

	s.notifyMolt(e)
	return e, nil
}

// Update aplica un PATCH parcial. Devuelve ErrNotFound si el id no existe
// bajo ese owner (nunca revela registros ajenos).
func (s *Service) Update(ctx context.Context, ownerUserID, id string, raw map[string]any) (Entry, error) {
	current, err := s.repo.GetByOwner(ctx, ownerUserID, id)
	if err != nil {
		return Entry{}, err
	}

	e, ferr := NormalizePatch(current, raw)
	if ferr != nil {
		return Entry{}, ferr
	}
	e.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, e); err != nil {
		return Entry{}, err
	}

	s.notifyMolt(e)
	return e, nil
}

func (s *Service) Get(ctx context.Context, ownerUserID, id string) (Entry, error) {
	return s.repo.GetByOwner(ctx, ownerUserID, id)
}

func (s *Service) List(ctx context.Context, ownerUserID string, filter ListFilter) ([]Entry, error) {
	return s.repo.ListByOwner(ctx, ownerUserID, filter)
}

func (s *Service) Delete(ctx context.Context, ownerUserID, id string) error {
	return s.repo.Delete(ctx, ownerUserID, id)
}

func (s *Service) notifyMolt(e Entry) {
	if s.syncer == nil || e.Kind != KindMolt {
		return
	}
	s.syncer.EntryChanged(e)
}
