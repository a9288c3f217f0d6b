package entries

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"tarantula-husbandry/internal/middleware"
	"tarantula-husbandry/internal/platform/coerce"
	"tarantula-husbandry/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/logs", func(lr chi.Router) {
		lr.Get("/", listEntriesHandler(svc))
		lr.Post("/", createEntryHandler(svc))
		lr.Get("/{entryID}", getEntryHandler(svc))
		lr.Patch("/{entryID}", updateEntryHandler(svc))
		lr.Delete("/{entryID}", deleteEntryHandler(svc))
	})
}

// listEntriesHandler godoc
// @Summary Listar entries del usuario
// @Description Lista las observaciones (molt/feeding/water/custom) del usuario autenticado, más reciente primero. Filtros: types (CSV), from/to (fecha), q (texto libre), limit (1-500).
// @Tags logs
// @Produce json
// @Success 200 {array} Entry
// @Failure 401 {object} map[string]string
// @Router /api/logs [get]
func listEntriesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			httpx.WriteError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		filter, ferr := parseListFilter(r)
		if ferr != nil {
			httpx.WriteFieldError(w, ferr)
			return
		}

		items, err := svc.List(r.Context(), claims.UserID, filter)
		if err != nil {
			httpx.WriteError(w, http.StatusInternalServerError, "internal error")
			return
		}
		if items == nil {
			items = []Entry{}
		}
		httpx.WriteJSON(w, http.StatusOK, items)
	}
}

// createEntryHandler godoc
// @Summary Crear entry
// @Description Crea una observación nueva. entryType y date son requeridos; species es requerida cuando entryType=molt. Campos condicionales por kind se descartan si vienen en el kind equivocado.
// @Tags logs
// @Accept json
// @Produce json
// @Success 201 {object} Entry
// @Failure 400 {object} map[string]string "detalle a nivel de campo"
// @Failure 401 {object} map[string]string
// @Router /api/logs [post]
func createEntryHandler(svc *Service) http.HandlerFunc {
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

		e, err := svc.Create(r.Context(), claims.UserID, raw)
		if err != nil {
			writeEntryError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, e)
	}
}

// getEntryHandler godoc
// @Summary Obtener un entry
// @Tags logs
// @Produce json
// @Param entryID path string true "ID del entry"
// @Success 200 {object} Entry
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/logs/{entryID} [get]
func getEntryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			httpx.WriteError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		e, err := svc.Get(r.Context(), claims.UserID, chi.URLParam(r, "entryID"))
		if err != nil {
			writeEntryError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, e)
	}
}

// updateEntryHandler godoc
// @Summary Actualizar entry (PATCH parcial)
// @Description Solo toca los campos presentes en el body; null explícito limpia un campo opcional. 404 si el entry no existe bajo el usuario autenticado.
// @Tags logs
// @Accept json
// @Produce json
// @Param entryID path string true "ID del entry"
// @Success 200 {object} Entry
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/logs/{entryID} [patch]
func updateEntryHandler(svc *Service) http.HandlerFunc {
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

		e, err := svc.Update(r.Context(), claims.UserID, chi.URLParam(r, "entryID"), raw)
		if err != nil {
			writeEntryError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, e)
	}
}

// deleteEntryHandler godoc
// @Summary Borrar entry
// @Tags logs
// @Produce json
// @Param entryID path string true "ID del entry"
// @Success 200 {object} map[string]bool
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/logs/{entryID} [delete]
func deleteEntryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			httpx.WriteError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		if err := svc.Delete(r.Context(), claims.UserID, chi.URLParam(r, "entryID")); err != nil {
			writeEntryError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}

// writeEntryError traduce errores del service a la taxonomía HTTP.
// Ningún error cruza el boundary sin traducción.
func writeEntryError(w http.ResponseWriter, err error) {
	var ferr *coerce.FieldError
	switch {
	case errors.As(err, &ferr):
		httpx.WriteFieldError(w, ferr)
	case errors.Is(err, ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "entry not found")
	case errors.Is(err, ErrInvalidInput):
		httpx.WriteError(w, http.StatusBadRequest, "invalid input")
	default:
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}

func parseListFilter(r *http.Request) (ListFilter, *coerce.FieldError) {
	limit := 100
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}

	filter := ListFilter{Limit: limit}

	if v := strings.TrimSpace(r.URL.Query().Get("types")); v != "" {
		for _, p := range strings.Split(v, ",") {
			if k := strings.TrimSpace(p); k != "" {
				filter.Kinds = append(filter.Kinds, Kind(k))
			}
		}
	}

	for _, q := range []struct {
		key string
		dst **time.Time
	}{
		{"from", &filter.From},
		{"to", &filter.To},
	} {
		if v := strings.TrimSpace(r.URL.Query().Get(q.key)); v != "" {
			t, ferr := coerce.Date(map[string]any{q.key: v}, q.key)
			if ferr != nil {
				return ListFilter{}, ferr
			}
			*q.dst = t
		}
	}

	if v := strings.TrimSpace(r.URL.Query().Get("q")); v != "" {
		filter.Query = v
	}

	return filter, nil
}
