package research

import (
	"encoding/json"
	"time"

	"tarantula-husbandry/internal/platform/coerce"

	"github.com/google/uuid"
)

// Normalize valida y tipa un stack crudo. name es requerido.
// Las notas vienen embebidas: una nota sin título ni contenido se descarta,
// el resto se conserva con ids estables (o nuevos si faltan).
func Normalize(raw map[string]any, now time.Time) (Stack, *coerce.FieldError) {
	var s Stack

	name, present, ferr := coerce.String(raw, "name")
	if ferr != nil {
		return Stack{}, ferr
	}
	if !present {
		return Stack{}, coerce.Fail("name", "required")
	}
	s.Name = name

	if sp, _, ferr := coerce.String(raw, "species"); ferr != nil {
		return Stack{}, ferr
	} else {
		s.Species = sp
	}

	s.Notes = normalizeNotes(raw, now)

	return s, nil
}

func normalizeNotes(raw map[string]any, now time.Time) []Note {
	v, ok := raw["notes"]
	if !ok || v == nil {
		return []Note{}
	}
	items, ok := v.([]any)
	if !ok {
		return []Note{}
	}

	out := make([]Note, 0, len(items))
	for _, it := range items {
		m, ok := it.(map[string]any)
		if !ok {
			continue
		}

		n := Note{CreatedAt: now, UpdatedAt: now}
		if s, present, ferr := coerce.String(m, "id"); ferr == nil && present {
			n.ID = s
		}
		if n.ID == "" {
			n.ID = uuid.NewString()
		}
		if s, _, ferr := coerce.String(m, "title"); ferr == nil {
			n.Title = s
		}
		if s, _, ferr := coerce.String(m, "individual"); ferr == nil {
			n.Individual = s
		}
		if s, _, ferr := coerce.String(m, "content"); ferr == nil {
			n.Content = s
		}
		if tags, ferr := coerce.StringSlice(m, "tags"); ferr == nil {
			n.Tags = tags
		}
		if t, ferr := coerce.Date(m, "createdAt"); ferr == nil && t != nil {
			n.CreatedAt = *t
		}
		if t, ferr := coerce.Date(m, "updatedAt"); ferr == nil && t != nil {
			n.UpdatedAt = *t
		}

		if n.Title == "" && n.Content == "" {
			continue
		}
		out = append(out, n)
	}
	return out
}

// NormalizePatch: overlay + re-normalización. Si el body trae "notes",
// la lista embebida se reemplaza completa (es el dueño de sus notas).
func NormalizePatch(current Stack, raw map[string]any) (Stack, *coerce.FieldError) {
	merged := toRaw(current)
	for k, v := range raw {
		if v == nil {
			delete(merged, k)
			continue
		}
		merged[k] = v
	}

	s, ferr := Normalize(merged, current.UpdatedAt)
	if ferr != nil {
		return Stack{}, ferr
	}
	s.ID = current.ID
	s.OwnerUserID = current.OwnerUserID
	s.CreatedAt = current.CreatedAt
	return s, nil
}

func toRaw(s Stack) map[string]any {
	b, _ := json.Marshal(s)
	var m map[string]any
	_ = json.Unmarshal(b, &m)
	return m
}
