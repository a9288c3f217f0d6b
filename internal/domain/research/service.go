package research

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("research stack not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) Create(ctx context.Context, ownerUserID string, raw map[string]any) (Stack, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return Stack{}, ErrInvalidInput
	}

	now := s.now().UTC()
	st, ferr := Normalize(raw, now)
	if ferr != nil {
		return Stack{}, ferr
	}

	st.ID = uuid.NewString()
	st.OwnerUserID = ownerUserID
	st.CreatedAt = now
	st.UpdatedAt = now

	if err := s.repo.Create(ctx, st); err != nil {
		return Stack{}, err
	}
	return st, nil
}

func (s *Service) Get(ctx context.Context, ownerUserID, id string) (Stack, error) {
	return s.repo.GetByOwner(ctx, ownerUserID, id)
}

func (s *Service) Update(ctx context.Context, ownerUserID, id string, raw map[string]any) (Stack, error) {
	current, err := s.repo.GetByOwner(ctx, ownerUserID, id)
	if err != nil {
		return Stack{}, err
	}

	st, ferr := NormalizePatch(current, raw)
	if ferr != nil {
		return Stack{}, ferr
	}
	st.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, st); err != nil {
		return Stack{}, err
	}
	return st, nil
}

func (s *Service) List(ctx context.Context, ownerUserID string) ([]Stack, error) {
	return s.repo.ListByOwner(ctx, ownerUserID)
}

func (s *Service) Delete(ctx context.Context, ownerUserID, id string) error {
	return s.repo.Delete(ctx, ownerUserID, id)
}
