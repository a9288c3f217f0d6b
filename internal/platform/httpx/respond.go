package httpx

import (
	"encoding/json"
	"net/http"

	"tarantula-husbandry/internal/platform/coerce"
)

// Helpers de respuesta compartidos por los handlers de todos los módulos.
// Antes cada módulo duplicaba su writeJSON; con siete módulos ya conviene
// el helper común.

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError emite el error genérico {"error": msg}.
// Para errores de storage/upstream usar msg="internal error" (sin detalle interno).
func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, map[string]string{"error": msg})
}

// WriteFieldError emite un 400 con detalle a nivel de campo,
// para que el cliente pueda marcar el input ofensivo.
func WriteFieldError(w http.ResponseWriter, ferr *coerce.FieldError) {
	WriteJSON(w, http.StatusBadRequest, map[string]string{
		"error":  "validation",
		"field":  ferr.Field,
		"reason": ferr.Reason,
	})
}

// DecodeBody decodifica el body a un map crudo. Lo usamos en POST/PATCH
// porque la normalización necesita saber qué campos vinieron presentes.
func DecodeBody(r *http.Request) (map[string]any, error) {
	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		return nil, err
	}
	return raw, nil
}
