package entries

import (
	"encoding/json"
	"time"

	"tarantula-husbandry/internal/domain/attachments"
	"tarantula-husbandry/internal/platform/coerce"
)

var stageValues = []string{string(StagePre), string(StageMolt), string(StagePost)}
var tempUnitValues = []string{string(TempCelsius), string(TempFahrenheit)}

// Normalize convierte un body crudo (network o archivo de export, incluso
// de un schema viejo) en un Entry tipado y validado. No asigna ID ni owner:
// eso es del service. Reglas:
//   - entryType y date requeridos; species requerida si entryType == molt
//   - stage solo para molt (default "Molt"); campos feeding solo para feeding;
//     si vienen en el kind equivocado se descartan en silencio (exports viejos
//     mezclaban shapes, rechazarlos rompería el import)
//   - texto trim-eado, vacío => ausente; números finitos o ausentes
//
// Normalizar un registro ya normalizado es idempotente.
func Normalize(raw map[string]any, now time.Time) (Entry, *coerce.FieldError) {
	var e Entry

	kind, present, ferr := coerce.String(raw, "entryType")
	if ferr != nil {
		return Entry{}, ferr
	}
	if !present {
		return Entry{}, coerce.Fail("entryType", "required")
	}
	e.Kind = Kind(kind)

	date, ferr := coerce.Date(raw, "date")
	if ferr != nil {
		return Entry{}, ferr
	}
	if date == nil {
		return Entry{}, coerce.Fail("date", "required")
	}
	e.Date = *date

	if s, _, ferr := coerce.String(raw, "specimen"); ferr != nil {
		return Entry{}, ferr
	} else {
		e.Specimen = s
	}
	if s, _, ferr := coerce.String(raw, "species"); ferr != nil {
		return Entry{}, ferr
	} else {
		e.Species = s
	}
	if e.Kind == KindMolt && e.Species == "" {
		return Entry{}, coerce.Fail("species", "required for molt entries")
	}

	// stage: solo molt
	if e.Kind == KindMolt {
		stage, ferr := coerce.Enum(raw, "stage", stageValues, string(DefaultStage))
		if ferr != nil {
			return Entry{}, ferr
		}
		e.Stage = Stage(stage)
	}

	for _, f := range []struct {
		key string
		dst **float64
	}{
		{"oldSize", &e.OldSize},
		{"newSize", &e.NewSize},
		{"humidity", &e.Humidity},
		{"temperature", &e.Temperature},
	} {
		v, ferr := coerce.Float(raw, f.key)
		if ferr != nil {
			return Entry{}, ferr
		}
		*f.dst = v
	}

	// unidad solo si hay temperatura
	if e.Temperature != nil {
		unit, ferr := coerce.Enum(raw, "tempUnit", tempUnitValues, string(TempCelsius))
		if ferr != nil {
			return Entry{}, ferr
		}
		e.TempUnit = TempUnit(unit)
	}

	if s, _, ferr := coerce.String(raw, "notes"); ferr != nil {
		return Entry{}, ferr
	} else {
		e.Notes = s
	}

	reminder, ferr := coerce.Date(raw, "reminderDate")
	if ferr != nil {
		return Entry{}, ferr
	}
	e.ReminderDate = reminder

	// sub-campos feeding: solo feeding
	if e.Kind == KindFeeding {
		if s, _, ferr := coerce.String(raw, "prey"); ferr != nil {
			return Entry{}, ferr
		} else {
			e.Prey = s
		}
		if s, _, ferr := coerce.String(raw, "outcome"); ferr != nil {
			return Entry{}, ferr
		} else {
			e.Outcome = s
		}
		amount, ferr := coerce.Int(raw, "amount")
		if ferr != nil {
			return Entry{}, ferr
		}
		e.Amount = amount
	}

	e.Attachments = attachments.NormalizeList(raw, now)

	return e, nil
}

// NormalizePatch aplica semántica PATCH: el registro actual se proyecta a
// su shape JSON, se superpone solo lo presente en el body (null explícito
// limpia el campo) y se vuelve a normalizar completo, así los invariantes
// condicionales por kind se re-aplican aunque el PATCH cambie el kind.
func NormalizePatch(current Entry, raw map[string]any) (Entry, *coerce.FieldError) {
	merged := toRaw(current)
	for k, v := range raw {
		if v == nil {
			delete(merged, k)
			continue
		}
		merged[k] = v
	}

	e, ferr := Normalize(merged, current.UpdatedAt)
	if ferr != nil {
		return Entry{}, ferr
	}
	e.ID = current.ID
	e.OwnerUserID = current.OwnerUserID
	e.CreatedAt = current.CreatedAt
	return e, nil
}

func toRaw(e Entry) map[string]any {
	b, _ := json.Marshal(e)
	var m map[string]any
	_ = json.Unmarshal(b, &m)
	return m
}
