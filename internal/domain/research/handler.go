package research

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
	r.Route("/research", func(rr chi.Router) {
		rr.Get("/", listHandler(svc))
		rr.Post("/", createHandler(svc))
		rr.Get("/{stackID}", getHandler(svc))
		rr.Patch("/{stackID}", updateHandler(svc))
		rr.Delete("/{stackID}", deleteHandler(svc))
	})
}

// listHandler godoc
// @Summary Listar research stacks
// @Tags research
// @Produce json
// @Success 200 {array} Stack
// @Failure 401 {object} map[string]string
// @Router /api/research [get]
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
			items = []Stack{}
		}
		httpx.WriteJSON(w, http.StatusOK, items)
	}
}

// createHandler godoc
// @Summary Crear research stack
// @Tags research
// @Accept json
// @Produce json
// @Success 201 {object} Stack
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/research [post]
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

		st, err := svc.Create(r.Context(), claims.UserID, raw)
		if err != nil {
			writeResearchError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, st)
	}
}

// getHandler godoc
// @Summary Obtener research stack por id
// @Tags research
// @Produce json
// @Param stackID path string true "ID del stack"
// @Success 200 {object} Stack
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/research/{stackID} [get]
func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			httpx.WriteError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		st, err := svc.Get(r.Context(), claims.UserID, chi.URLParam(r, "stackID"))
		if err != nil {
			writeResearchError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, st)
	}
}

// updateHandler godoc
// @Summary Actualizar research stack (PATCH parcial)
// @Tags research
// @Accept json
// @Produce json
// @Param stackID path string true "ID del stack"
// @Success 200 {object} Stack
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/research/{stackID} [patch]
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

		st, err := svc.Update(r.Context(), claims.UserID, chi.URLParam(r, "stackID"), raw)
		if err != nil {
			writeResearchError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, st)
	}
}

// deleteHandler godoc
// @Summary Borrar research stack (con sus notas)
// @Tags research
// @Produce json
// @Param stackID path string true "ID del stack"
// @Success 200 {object} map[string]bool
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/research/{stackID} [delete]
func deleteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			httpx.WriteError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		if err := svc.Delete(r.Context(), claims.UserID, chi.URLParam(r, "stackID")); err != nil {
			writeResearchError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}

func writeResearchError(w http.ResponseWriter, err error) {
	var ferr *coerce.FieldError
	switch {
	case errors.As(err, &ferr):
		httpx.WriteFieldError(w, ferr)
	case errors.Is(err, ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "research stack not found")
	case errors.Is(err, ErrInvalidInput):
		httpx.WriteError(w, http.StatusBadRequest, "invalid input")
	default:
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}
