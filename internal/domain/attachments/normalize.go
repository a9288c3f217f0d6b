package attachments

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"tarantula-husbandry/internal/platform/coerce"

	"github.com/google/uuid"
)

// NormalizeList levanta la lista "attachments" de un body crudo.
// Entradas que no son objetos o no traen url se descartan en silencio: un
// attachment roto no invalida el registro que lo contiene. dataUrl nunca
// pasa al registro normalizado: solo viaja dentro de archivos de
// export/import, donde el reconciliador lo rehidrata al blob store antes
// de llegar acá.
func NormalizeList(raw map[string]any, now time.Time) []Attachment {
	v, ok := raw["attachments"]
	if !ok || v == nil {
		return nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil
	}

	out := make([]Attachment, 0, len(items))
	for _, it := range items {
		m, ok := it.(map[string]any)
		if !ok {
			continue
		}
		a := Attachment{AddedAt: now}
		if s, present, ferr := coerce.String(m, "id"); ferr == nil && present {
			a.ID = s
		}
		if a.ID == "" {
			a.ID = uuid.NewString()
		}
		if s, present, ferr := coerce.String(m, "name"); ferr == nil && present {
			a.Name = s
		}
		if s, present, ferr := coerce.String(m, "url"); ferr == nil && present {
			a.URL = s
		}
		if s, present, ferr := coerce.String(m, "mimeType"); ferr == nil && present {
			a.MimeType = s
		}
		if t, ferr := coerce.Date(m, "addedAt"); ferr == nil && t != nil {
			a.AddedAt = *t
		}
		if a.URL == "" {
			continue
		}
		out = append(out, a)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// EncodeDataURL arma data:<mime>;base64,<bytes>.
func EncodeDataURL(mime string, data []byte) string {
	if mime == "" {
		mime = "application/octet-stream"
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// DecodeDataURL parsea un data URL base64. Devuelve error si el esquema
// o el payload no son válidos (el import lo reporta en errors[]).
func DecodeDataURL(s string) (mime string, data []byte, err error) {
	if !strings.HasPrefix(s, "data:") {
		return "", nil, errors.New("not a data url")
	}
	rest := strings.TrimPrefix(s, "data:")
	sep := strings.Index(rest, ",")
	if sep < 0 {
		return "", nil, errors.New("malformed data url")
	}
	meta, payload := rest[:sep], rest[sep+1:]
	if !strings.HasSuffix(meta, ";base64") {
		return "", nil, errors.New("data url is not base64")
	}
	mime = strings.TrimSuffix(meta, ";base64")

	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("decode base64: %w", err)
	}
	return mime, data, nil
}
