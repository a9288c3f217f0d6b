package accounts

import (
	"errors"
	"net/http"
	"strings"

	"tarantula-husbandry/internal/middleware"
	"tarantula-husbandry/internal/platform/coerce"
	"tarantula-husbandry/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/account", func(ar chi.Router) {
		ar.Get("/password", passwordStatusHandler(svc))
		ar.Patch("/password", changePasswordHandler(svc))
		ar.Delete("/", deleteAccountHandler(svc))
	})
}

// passwordStatusHandler godoc
// @Summary Saber si la cuenta tiene contraseña local
// @Tags account
// @Produce json
// @Success 200 {object} map[string]bool
// @Failure 401 {object} map[string]string
// @Router /api/account/password [get]
func passwordStatusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			httpx.WriteError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		has, err := svc.HasPassword(r.Context(), claims.UserID)
		if err != nil {
			httpx.WriteError(w, http.StatusInternalServerError, "internal error")
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]bool{"hasPassword": has})
	}
}

// changePasswordHandler godoc
// @Summary Establecer o cambiar contraseña local
// @Tags account
// @Accept json
// @Produce json
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /api/account/password [patch]
func changePasswordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			httpx.WriteError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		raw, err := httpx.DecodeBody(r)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		current, _, ferr := coerce.String(raw, "currentPassword")
		if ferr != nil {
			httpx.WriteFieldError(w, ferr)
			return
		}
		next, present, ferr := coerce.String(raw, "newPassword")
		if ferr != nil {
			httpx.WriteFieldError(w, ferr)
			return
		}
		if !present {
			httpx.WriteFieldError(w, coerce.Fail("newPassword", "required"))
			return
		}

		if err := svc.ChangePassword(r.Context(), claims.UserID, claims.Email, current, next); err != nil {
			writeAccountError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}

// deleteAccountHandler godoc
// @Summary Borrar la cuenta y todos sus datos
// @Tags account
// @Produce json
// @Success 200 {object} map[string]bool
// @Failure 401 {object} map[string]string
// @Router /api/account [delete]
func deleteAccountHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			httpx.WriteError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		if err := svc.DeleteAccount(r.Context(), claims.UserID); err != nil {
			writeAccountError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}

func writeAccountError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrWeakPassword):
		httpx.WriteError(w, http.StatusBadRequest, "password must be at least 8 characters")
	case errors.Is(err, ErrWrongPassword):
		httpx.WriteError(w, http.StatusBadRequest, "current password is incorrect")
	case errors.Is(err, ErrTooManyAttempts):
		httpx.WriteError(w, http.StatusTooManyRequests, "too many attempts, try again later")
	case errors.Is(err, ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "user not found")
	case errors.Is(err, ErrInvalidInput):
		httpx.WriteError(w, http.StatusBadRequest, "invalid input")
	default:
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}
