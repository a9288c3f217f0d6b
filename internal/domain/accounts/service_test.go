package accounts_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"tarantula-husbandry/internal/adapters/storage/memory"
	"tarantula-husbandry/internal/domain/accounts"
	"tarantula-husbandry/internal/platform/ratelimit"
)

func TestChangePassword_SetAndChange(t *testing.T) {
	ctx := context.Background()
	svc := accounts.NewService(memory.NewUsersRepo(), ratelimit.NewMemoryStore())

	has, err := svc.HasPassword(ctx, "u-1")
	if err != nil || has {
		t.Fatalf("fresh user: has=%v err=%v", has, err)
	}

	// set inicial: no requiere current
	if err := svc.ChangePassword(ctx, "u-1", "u@example.com", "", "first-password"); err != nil {
		t.Fatalf("initial set: %v", err)
	}
	has, _ = svc.HasPassword(ctx, "u-1")
	if !has {
		t.Fatalf("expected hasPassword true after set")
	}
	if err := svc.VerifyPassword(ctx, "u-1", "first-password"); err != nil {
		t.Fatalf("verify: %v", err)
	}

	// cambio requiere current correcta
	err = svc.ChangePassword(ctx, "u-1", "u@example.com", "wrong", "second-password")
	if !errors.Is(err, accounts.ErrWrongPassword) {
		t.Fatalf("expected ErrWrongPassword, got %v", err)
	}
	if err := svc.ChangePassword(ctx, "u-1", "u@example.com", "first-password", "second-password"); err != nil {
		t.Fatalf("change: %v", err)
	}
	if err := svc.VerifyPassword(ctx, "u-1", "second-password"); err != nil {
		t.Fatalf("verify new: %v", err)
	}
}

func TestChangePassword_Policy(t *testing.T) {
	ctx := context.Background()
	svc := accounts.NewService(memory.NewUsersRepo(), ratelimit.NewMemoryStore())

	if err := svc.ChangePassword(ctx, "u-1", "u@example.com", "", "short"); !errors.Is(err, accounts.ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword for short, got %v", err)
	}
	// la contraseña no puede ser el propio email
	if err := svc.ChangePassword(ctx, "u-1", "u@example.com", "", "U@Example.Com"); !errors.Is(err, accounts.ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword for email-as-password, got %v", err)
	}
}

func TestChangePassword_RateLimited(t *testing.T) {
	ctx := context.Background()
	svc := accounts.NewService(memory.NewUsersRepo(), ratelimit.NewMemoryStore())

	if err := svc.ChangePassword(ctx, "u-1", "", "", "first-password"); err != nil {
		t.Fatalf("set: %v", err)
	}

	for i := 0; i < 5; i++ {
		err := svc.ChangePassword(ctx, "u-1", "", "wrong", "another-password")
		if !errors.Is(err, accounts.ErrWrongPassword) {
			t.Fatalf("attempt %d: expected ErrWrongPassword, got %v", i, err)
		}
	}

	err := svc.ChangePassword(ctx, "u-1", "", "wrong", "another-password")
	if !errors.Is(err, accounts.ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts after 5 failures, got %v", err)
	}

	// incluso la contraseña correcta queda bloqueada dentro de la ventana
	err = svc.ChangePassword(ctx, "u-1", "", "first-password", "another-password")
	if !errors.Is(err, accounts.ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts for correct password too, got %v", err)
	}
}

type failingWiper struct{}

func (failingWiper) DeleteAllByOwner(ctx context.Context, ownerUserID string) error {
	return errors.New("boom")
}

type countingWiper struct {
	calls int
}

func (w *countingWiper) DeleteAllByOwner(ctx context.Context, ownerUserID string) error {
	w.calls++
	return nil
}

func TestDeleteAccount_CascadeAndAbort(t *testing.T) {
	ctx := context.Background()

	// cascada feliz
	w1, w2 := &countingWiper{}, &countingWiper{}
	svc := accounts.NewService(memory.NewUsersRepo(), nil, w1, w2)
	if err := svc.DeleteAccount(ctx, "u-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if w1.calls != 1 || w2.calls != 1 {
		t.Fatalf("expected both wipers called once, got %d %d", w1.calls, w2.calls)
	}

	// una colección que falla aborta y propaga
	svc = accounts.NewService(memory.NewUsersRepo(), nil, failingWiper{}, w1)
	if err := svc.DeleteAccount(ctx, "u-1"); err == nil {
		t.Fatalf("expected error from failing wiper")
	}
}

func TestVerifyPassword_NotSet(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUsersRepo()
	svc := accounts.NewService(repo, nil)

	_ = repo.Upsert(ctx, accounts.User{ID: "u-1", CreatedAt: time.Now(), UpdatedAt: time.Now()})
	if err := svc.VerifyPassword(ctx, "u-1", "whatever"); !errors.Is(err, accounts.ErrPasswordNotSet) {
		t.Fatalf("expected ErrPasswordNotSet, got %v", err)
	}
}
