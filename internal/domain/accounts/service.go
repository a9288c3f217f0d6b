package accounts

import (
	"context"
	"errors"
	"strings"
	"time"

	"tarantula-husbandry/internal/platform/ratelimit"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrNotFound        = errors.New("user not found")
	ErrWrongPassword   = errors.New("wrong password")
	ErrWeakPassword    = errors.New("password too short")
	ErrTooManyAttempts = errors.New("too many attempts")
	ErrPasswordNotSet  = errors.New("password not set")
)

const (
	minPasswordLength = 8

	attemptLimit  = 5
	attemptWindow = 15 * time.Minute
)

// Wiper borra todos los registros de un dueño en una colección.
// Cada repositorio de dominio lo implementa con DeleteAllByOwner.
type Wiper interface {
	DeleteAllByOwner(ctx context.Context, ownerUserID string) error
}

type Service struct {
	users    Repository
	attempts ratelimit.AttemptStore
	wipers   []Wiper
	now      func() time.Time
}

func NewService(users Repository, attempts ratelimit.AttemptStore, wipers ...Wiper) *Service {
	return &Service{users: users, attempts: attempts, wipers: wipers, now: time.Now}
}

// HasPassword indica si la cuenta tiene contraseña local configurada.
// Una cuenta desconocida simplemente no la tiene; no es un error.
func (s *Service) HasPassword(ctx context.Context, userID string) (bool, error) {
	u, err := s.users.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return u.PasswordHash != "", nil
}

// ChangePassword establece o cambia la contraseña local. Si ya existe una,
// currentPassword debe coincidir; los fallos consumen la ventana del
// limitador de intentos.
func (s *Service) ChangePassword(ctx context.Context, userID, email, currentPassword, newPassword string) error {
	if strings.TrimSpace(userID) == "" {
		return ErrInvalidInput
	}
	if len(newPassword) < minPasswordLength {
		return ErrWeakPassword
	}
	if email != "" && strings.EqualFold(newPassword, email) {
		return ErrWeakPassword
	}
	now := s.now().UTC()
	if s.attempts != nil && s.attempts.TooManyRecent(userID, now, attemptLimit, attemptWindow) {
		return ErrTooManyAttempts
	}

	u, err := s.users.Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return err
		}
		u = User{ID: userID, Email: email, CreatedAt: now}
	}

	if u.PasswordHash != "" {
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(currentPassword)) != nil {
			if s.attempts != nil {
				s.attempts.AddFailure(userID, now, attemptWindow)
			}
			return ErrWrongPassword
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	u.UpdatedAt = now
	if u.Email == "" {
		u.Email = email
	}

	if err := s.users.Upsert(ctx, u); err != nil {
		return err
	}
	if s.attempts != nil {
		s.attempts.Reset(userID)
	}
	return nil
}

// VerifyPassword comprueba la contraseña local de una cuenta.
func (s *Service) VerifyPassword(ctx context.Context, userID, password string) error {
	now := s.now().UTC()
	if s.attempts != nil && s.attempts.TooManyRecent(userID, now, attemptLimit, attemptWindow) {
		return ErrTooManyAttempts
	}
	u, err := s.users.Get(ctx, userID)
	if err != nil {
		return err
	}
	if u.PasswordHash == "" {
		return ErrPasswordNotSet
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		if s.attempts != nil {
			s.attempts.AddFailure(userID, now, attemptWindow)
		}
		return ErrWrongPassword
	}
	if s.attempts != nil {
		s.attempts.Reset(userID)
	}
	return nil
}

// DeleteAccount borra la cuenta y, en cascada, todos los datos del dueño
// en cada colección registrada. Si una colección falla se aborta: mejor
// una cuenta a medio borrar que reportar un borrado que no ocurrió.
func (s *Service) DeleteAccount(ctx context.Context, userID string) error {
	if strings.TrimSpace(userID) == "" {
		return ErrInvalidInput
	}
	for _, w := range s.wipers {
		if err := w.DeleteAllByOwner(ctx, userID); err != nil {
			return err
		}
	}
	if err := s.users.Delete(ctx, userID); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	return nil
}
