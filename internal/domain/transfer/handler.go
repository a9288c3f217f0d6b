package transfer

import (
	"encoding/json"
	"net/http"
	"strings"

	"tarantula-husbandry/internal/middleware"
	"tarantula-husbandry/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/export", exportHandler(svc))
	r.Post("/import", importHandler(svc))
}

// exportHandler godoc
// @Summary Exportar todos los datos del usuario
// @Description Con embed=1 los attachments viajan inline como data URLs.
// @Tags transfer
// @Produce json
// @Param embed query string false "1 para inlinear binarios"
// @Success 200 {object} Envelope
// @Failure 401 {object} map[string]string
// @Router /api/export [get]
func exportHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			httpx.WriteError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		embed := r.URL.Query().Get("embed") == "1" || r.URL.Query().Get("embed") == "true"

		env, err := svc.Export(r.Context(), claims.UserID, embed)
		if err != nil {
			httpx.WriteError(w, http.StatusInternalServerError, "internal error")
			return
		}

		w.Header().Set("Content-Disposition", `attachment; filename="tarantula-export.json"`)
		httpx.WriteJSON(w, http.StatusOK, env)
	}
}

// importHandler godoc
// @Summary Importar un archivo de export
// @Description Siempre responde 200 con un reporte; los registros
// @Description inválidos quedan en errors[] sin abortar el resto.
// @Tags transfer
// @Accept json
// @Produce json
// @Success 200 {object} ImportReport
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/import [post]
func importHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			httpx.WriteError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		var env rawEnvelope
		if err := json.NewDecoder(r.Body).Decode(&env); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		report := svc.Import(r.Context(), claims.UserID, env)
		httpx.WriteJSON(w, http.StatusOK, report)
	}
}
