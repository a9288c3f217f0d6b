package coerce

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// FieldError describe un campo inválido en un body JSON.
// Es el "fallo estructurado" que los normalizadores devuelven en vez de panic:
// input malformado esperado => FieldError; bug del programador => error normal.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func Fail(field, reason string) *FieldError {
	return &FieldError{Field: field, Reason: reason}
}

// String devuelve el valor trim-eado de un campo string.
// present=false si el campo no vino en el map; un string vacío tras trim
// cuenta como ausente (nunca guardamos "" donde queremos "sin valor").
func String(raw map[string]any, key string) (value string, present bool, ferr *FieldError) {
	v, ok := raw[key]
	if !ok || v == nil {
		return "", false, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", false, Fail(key, "must be a string")
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false, nil
	}
	return s, true, nil
}

// Float acepta número JSON o string numérico (archivos de export viejos
// serializaban medidas como string). Rechaza NaN/Inf.
func Float(raw map[string]any, key string) (*float64, *FieldError) {
	v, ok := raw[key]
	if !ok || v == nil {
		return nil, nil
	}
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case int:
		f = float64(t)
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return nil, nil
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, Fail(key, "must be a number")
		}
		f = parsed
	default:
		return nil, Fail(key, "must be a number")
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, Fail(key, "must be a finite number")
	}
	return &f, nil
}

// Int como Float pero entero (counts: huevos, slings, presas).
func Int(raw map[string]any, key string) (*int, *FieldError) {
	f, ferr := Float(raw, key)
	if ferr != nil {
		return nil, ferr
	}
	if f == nil {
		return nil, nil
	}
	if *f != math.Trunc(*f) {
		return nil, Fail(key, "must be an integer")
	}
	n := int(*f)
	return &n, nil
}

var dateLayouts = []string{"2006-01-02", time.RFC3339, time.RFC3339Nano}

// Date acepta YYYY-MM-DD (formularios) o RFC3339 (archivos de export).
func Date(raw map[string]any, key string) (*time.Time, *FieldError) {
	s, present, ferr := String(raw, key)
	if ferr != nil {
		return nil, Fail(key, "must be a date string")
	}
	if !present {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			utc := t.UTC()
			return &utc, nil
		}
	}
	return nil, Fail(key, "must be YYYY-MM-DD or RFC3339")
}

// Enum devuelve el valor si está en allowed; si el campo no vino, def;
// si vino con un valor desconocido, también def (tolerancia con exports
// viejos, el default documentado gana).
func Enum(raw map[string]any, key string, allowed []string, def string) (string, *FieldError) {
	s, present, ferr := String(raw, key)
	if ferr != nil {
		return "", ferr
	}
	if !present {
		return def, nil
	}
	for _, a := range allowed {
		if strings.EqualFold(s, a) {
			return a, nil
		}
	}
	return def, nil
}

// StringSlice para listas de texto (tags). Elementos no-string se descartan.
func StringSlice(raw map[string]any, key string) ([]string, *FieldError) {
	v, ok := raw[key]
	if !ok || v == nil {
		return nil, nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil, Fail(key, "must be an array of strings")
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		s, ok := it.(string)
		if !ok {
			continue
		}
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}

// Has indica si el campo vino en el body (PATCH real: solo tocar lo presente).
func Has(raw map[string]any, key string) bool {
	_, ok := raw[key]
	return ok
}
