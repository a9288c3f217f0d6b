package health

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
	r.Route("/health-logs", func(hr chi.Router) {
		hr.Get("/", listHandler(svc))
		hr.Post("/", createHandler(svc))
		hr.Patch("/{healthID}", updateHandler(svc))
		hr.Delete("/{healthID}", deleteHandler(svc))
	})
}

// listHandler godoc
// @Summary Listar health entries
// @Tags health
// @Produce json
// @Success 200 {array} HealthEntry
// @Failure 401 {object} map[string]string
// @Router /api/health-logs [get]
func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			httpx.WriteError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		items, err := svc.List(r.Context(), claims.UserID)
		if err != nil {
			httpx.WriteError(w, http.StatusInternalServerError, "internal error")
			return
		}
		if items == nil {
			items = []HealthEntry{}
		}
		httpx.WriteJSON(w, http.StatusOK, items)
	}
}

// createHandler godoc
// @Summary Crear health entry
// @Tags health
// @Accept json
// @Produce json
// @Success 201 {object} HealthEntry
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/health-logs [post]
func createHandler(svc *Service) http.HandlerFunc {
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

		h, err := svc.Create(r.Context(), claims.UserID, raw)
		if err != nil {
			writeHealthError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, h)
	}
}

// updateHandler godoc
// @Summary Actualizar health entry (PATCH parcial)
// @Tags health
// @Accept json
// @Produce json
// @Param healthID path string true "ID del health entry"
// @Success 200 {object} HealthEntry
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/health-logs/{healthID} [patch]
func updateHandler(svc *Service) http.HandlerFunc {
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

		h, err := svc.Update(r.Context(), claims.UserID, chi.URLParam(r, "healthID"), raw)
		if err != nil {
			writeHealthError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, h)
	}
}

// deleteHandler godoc
// @Summary Borrar health entry
// @Tags health
// @Produce json
// @Param healthID path string true "ID del health entry"
// @Success 200 {object} map[string]bool
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/health-logs/{healthID} [delete]
func deleteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			httpx.WriteError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		if err := svc.Delete(r.Context(), claims.UserID, chi.URLParam(r, "healthID")); err != nil {
			writeHealthError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}

func writeHealthError(w http.ResponseWriter, err error) {
	var ferr *coerce.FieldError
	switch {
	case errors.As(err, &ferr):
		httpx.WriteFieldError(w, ferr)
	case errors.Is(err, ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "health entry not found")
	case errors.Is(err, ErrInvalidInput):
		httpx.WriteError(w, http.StatusBadRequest, "invalid input")
	default:
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}
