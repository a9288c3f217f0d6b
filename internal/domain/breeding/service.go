package breeding

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("breeding entry not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) Create(ctx context.Context, ownerUserID string, raw map[string]any) (BreedingEntry, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return BreedingEntry{}, ErrInvalidInput
	}

	now := s.now().UTC()
	b, ferr := Normalize(raw, now)
	if ferr != nil {
		return BreedingEntry{}, ferr
	}

	b.ID = uuid.NewString()
	b.OwnerUserID = ownerUserID
	b.CreatedAt = now
	b.UpdatedAt = now

	if err := s.repo.Create(ctx, b); err != nil {
		return BreedingEntry{}, err
	}
	return b, nil
}

func (s *Service) Update(ctx context.Context, ownerUserID, id string, raw map[string]any) (BreedingEntry, error) {
	current, err := s.repo.GetByOwner(ctx, ownerUserID, id)
	if err != nil {
		return BreedingEntry{}, err
	}

	b, ferr := NormalizePatch(current, raw)
	if ferr != nil {
		return BreedingEntry{}, ferr
	}
	b.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, b); err != nil {
		return BreedingEntry{}, err
	}
	return b, nil
}

func (s *Service) List(ctx context.Context, ownerUserID string) ([]BreedingEntry, error) {
	return s.repo.ListByOwner(ctx, ownerUserID)
}

func (s *Service) Delete(ctx context.Context, ownerUserID, id string) error {
	return s.repo.Delete(ctx, ownerUserID, id)
}
