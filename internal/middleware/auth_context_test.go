package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"tarantula-husbandry/internal/ports/auth"
)

type staticVerifier struct {
	claims auth.Claims
}

func (v staticVerifier) Verify(_ context.Context, _ string) (auth.Claims, error) {
	return v.claims, nil
}

func claimsFor(t *testing.T, mw func(http.Handler) http.Handler, prepare func(*http.Request)) (auth.Claims, bool) {
	t.Helper()

	var got auth.Claims
	var ok bool
	h := mw(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got, ok = GetClaims(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	prepare(req)
	h.ServeHTTP(httptest.NewRecorder(), req)
	return got, ok
}

func TestAuthContext_AdminByProviderID_CaseExact(t *testing.T) {
	t.Setenv("ADMIN_PROVIDER_IDS", "User_2gHxK, user_plain")
	t.Setenv("ADMIN_EMAILS", "")

	mw := AuthContext(nil)

	// los provider ids se comparan tal cual, sin case folding
	c, ok := claimsFor(t, mw, func(r *http.Request) {
		r.Header.Set("X-Debug-User-ID", "User_2gHxK")
	})
	if !ok || !c.IsAdmin {
		t.Fatalf("mixed-case id in allow-list should be admin: %+v", c)
	}

	c, _ = claimsFor(t, mw, func(r *http.Request) {
		r.Header.Set("X-Debug-User-ID", "user_2ghxk")
	})
	if c.IsAdmin {
		t.Fatalf("different casing is a different provider id: %+v", c)
	}

	c, _ = claimsFor(t, mw, func(r *http.Request) {
		r.Header.Set("X-Debug-User-ID", "user_other")
	})
	if c.IsAdmin {
		t.Fatalf("unlisted id should not be admin: %+v", c)
	}
}

func TestAuthContext_AdminByEmail_CaseInsensitive(t *testing.T) {
	t.Setenv("ADMIN_EMAILS", "Admin@Example.com")
	t.Setenv("ADMIN_PROVIDER_IDS", "")

	mw := AuthContext(staticVerifier{claims: auth.Claims{
		UserID: "u-1",
		Email:  "admin@EXAMPLE.com",
	}})

	c, ok := claimsFor(t, mw, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer token")
	})
	if !ok || !c.IsAdmin {
		t.Fatalf("email match should be case-insensitive: %+v", c)
	}
}
