package middleware

import (
	"context"
	"net/http"
	"os"
	"strings"

	"tarantula-husbandry/internal/ports/auth"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// AuthContext:
// - Si verifier != nil y viene Bearer token => intenta Verify() y setea claims.
// - Si verifier == nil => modo dev: header X-Debug-User-ID setea claims.
// - Sin claims el request sigue igual; cada handler decide si exige auth (401).
// Además marca IsAdmin según las allow-lists ADMIN_EMAILS / ADMIN_PROVIDER_IDS.
func AuthContext(verifier auth.AuthVerifier) func(http.Handler) http.Handler {
	// Emails se comparan case-insensitive; los provider ids son exactos.
	adminEmails := parseAllowList(os.Getenv("ADMIN_EMAILS"), true)
	adminIDs := parseAllowList(os.Getenv("ADMIN_PROVIDER_IDS"), false)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Dev mode: permitir inyectar user sin verifier
			if verifier == nil {
				if uid := strings.TrimSpace(r.Header.Get("X-Debug-User-ID")); uid != "" {
					claims := auth.Claims{UserID: uid}
					tagAdmin(&claims, adminEmails, adminIDs)
					ctx := context.WithValue(r.Context(), claimsKey, claims)
					next.ServeHTTP(w, r.WithContext(ctx))
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			token := bearerToken(r.Header.Get("Authorization"))
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := verifier.Verify(r.Context(), token)
			if err != nil {
				// No cortamos acá para no acoplar. El handler decide el 401.
				next.ServeHTTP(w, r)
				return
			}

			tagAdmin(&claims, adminEmails, adminIDs)
			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	v := ctx.Value(claimsKey)
	if v == nil {
		return auth.Claims{}, false
	}
	c, ok := v.(auth.Claims)
	return c, ok
}

func tagAdmin(c *auth.Claims, emails, ids map[string]struct{}) {
	if c.Email != "" {
		if _, ok := emails[strings.ToLower(c.Email)]; ok {
			c.IsAdmin = true
			return
		}
	}
	if _, ok := ids[c.UserID]; ok {
		c.IsAdmin = true
	}
}

func parseAllowList(s string, fold bool) map[string]struct{} {
	out := map[string]struct{}{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if fold {
			part = strings.ToLower(part)
		}
		if part == "" {
			continue
		}
		out[part] = struct{}{}
	}
	return out
}

func bearerToken(authHeader string) string {
	if strings.TrimSpace(authHeader) == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
