package health

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("health entry not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) Create(ctx context.Context, ownerUserID string, raw map[string]any) (HealthEntry, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return HealthEntry{}, ErrInvalidInput
	}

	now := s.now().UTC()
	h, ferr := Normalize(raw, now)
	if ferr != nil {
		return HealthEntry{}, ferr
	}

	h.ID = uuid.NewString()
	h.OwnerUserID = ownerUserID
	h.CreatedAt = now
	h.UpdatedAt = now

	if err := s.repo.Create(ctx, h); err != nil {
		return HealthEntry{}, err
	}
	return h, nil
}

func (s *Service) Update(ctx context.Context, ownerUserID, id string, raw map[string]any) (HealthEntry, error) {
	current, err := s.repo.GetByOwner(ctx, ownerUserID, id)
	if err != nil {
		return HealthEntry{}, err
	}

	h, ferr := NormalizePatch(current, raw)
	if ferr != nil {
		return HealthEntry{}, ferr
	}
	h.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, h); err != nil {
		return HealthEntry{}, err
	}
	return h, nil
}

func (s *Service) List(ctx context.Context, ownerUserID string) ([]HealthEntry, error) {
	return s.repo.ListByOwner(ctx, ownerUserID)
}

func (s *Service) Delete(ctx context.Context, ownerUserID, id string) error {
	return s.repo.Delete(ctx, ownerUserID, id)
}
