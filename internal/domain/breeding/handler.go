package breeding

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
	r.Route("/breeding", func(br chi.Router) {
		br.Get("/", listHandler(svc))
		br.Post("/", createHandler(svc))
		br.Patch("/{breedingID}", updateHandler(svc))
		br.Delete("/{breedingID}", deleteHandler(svc))
	})
}

// listHandler godoc
// @Summary Listar breeding entries
// @Tags breeding
// @Produce json
// @Success 200 {array} BreedingEntry
// @Failure 401 {object} map[string]string
// @Router /api/breeding [get]
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
			items = []BreedingEntry{}
		}
		httpx.WriteJSON(w, http.StatusOK, items)
	}
}

// createHandler godoc
// @Summary Crear breeding entry
// @Tags breeding
// @Accept json
// @Produce json
// @Success 201 {object} BreedingEntry
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/breeding [post]
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

		b, err := svc.Create(r.Context(), claims.UserID, raw)
		if err != nil {
			writeBreedingError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, b)
	}
}

// updateHandler godoc
// @Summary Actualizar breeding entry (PATCH parcial)
// @Tags breeding
// @Accept json
// @Produce json
// @Param breedingID path string true "ID del breeding entry"
// @Success 200 {object} BreedingEntry
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/breeding/{breedingID} [patch]
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

		b, err := svc.Update(r.Context(), claims.UserID, chi.URLParam(r, "breedingID"), raw)
		if err != nil {
			writeBreedingError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, b)
	}
}

// deleteHandler godoc
// @Summary Borrar breeding entry
// @Tags breeding
// @Produce json
// @Param breedingID path string true "ID del breeding entry"
// @Success 200 {object} map[string]bool
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/breeding/{breedingID} [delete]
func deleteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			httpx.WriteError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		if err := svc.Delete(r.Context(), claims.UserID, chi.URLParam(r, "breedingID")); err != nil {
			writeBreedingError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}

func writeBreedingError(w http.ResponseWriter, err error) {
	var ferr *coerce.FieldError
	switch {
	case errors.As(err, &ferr):
		httpx.WriteFieldError(w, ferr)
	case errors.Is(err, ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "breeding entry not found")
	case errors.Is(err, ErrInvalidInput):
		httpx.WriteError(w, http.StatusBadRequest, "invalid input")
	default:
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}
