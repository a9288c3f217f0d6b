package uploads

import (
	"net/http"
	"strings"
	"time"

	"tarantula-husbandry/internal/domain/attachments"
	"tarantula-husbandry/internal/middleware"
	"tarantula-husbandry/internal/platform/httpx"
	"tarantula-husbandry/internal/platform/logger"
	"tarantula-husbandry/internal/ports/blob"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// maxUploadBytes limita el tamaño total del form multipart.
const maxUploadBytes = 20 << 20

func RegisterRoutes(r chi.Router, store blob.Store, log logger.Logger) {
	r.Post("/upload", uploadHandler(store, log))
}

// uploadHandler godoc
// @Summary Subir imágenes adjuntas
// @Description Acepta multipart/form-data con uno o más campos "files".
// @Description Solo imágenes; cualquier otro tipo responde 415.
// @Tags uploads
// @Accept mpfd
// @Produce json
// @Success 201 {object} map[string][]attachments.Attachment
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 415 {object} map[string]string
// @Router /api/upload [post]
func uploadHandler(store blob.Store, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			httpx.WriteError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid multipart form")
			return
		}

		files := r.MultipartForm.File["files"]
		if len(files) == 0 {
			// alias habitual de clientes de un solo archivo
			files = r.MultipartForm.File["file"]
		}
		if len(files) == 0 {
			httpx.WriteError(w, http.StatusBadRequest, "no files provided")
			return
		}

		// Validar todo antes de persistir nada: una mezcla de imágenes y
		// no-imágenes no debe dejar mitades guardadas.
		for _, fh := range files {
			if !isImage(fh.Header.Get("Content-Type")) {
				httpx.WriteError(w, http.StatusUnsupportedMediaType, "only image uploads are allowed")
				return
			}
		}

		saved := make([]attachments.Attachment, 0, len(files))
		for _, fh := range files {
			f, err := fh.Open()
			if err != nil {
				httpx.WriteError(w, http.StatusBadRequest, "unreadable file")
				return
			}
			info, err := store.Put(r.Context(), claims.UserID, fh.Filename, f, fh.Header.Get("Content-Type"))
			f.Close()
			if err != nil {
				log.Error("fallo al guardar adjunto", map[string]any{"file": fh.Filename, "error": err.Error()})
				httpx.WriteError(w, http.StatusInternalServerError, "failed to store file")
				return
			}
			saved = append(saved, attachments.Attachment{
				ID:       uuid.NewString(),
				Name:     fh.Filename,
				URL:      info.URL,
				MimeType: info.ContentType,
				AddedAt:  time.Now().UTC(),
			})
		}

		httpx.WriteJSON(w, http.StatusCreated, map[string][]attachments.Attachment{"attachments": saved})
	}
}

func isImage(contentType string) bool {
	mt := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.Index(mt, ";"); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}
	return strings.HasPrefix(mt, "image/")
}
