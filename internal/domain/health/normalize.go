package health

import (
	"encoding/json"
	"time"

	"tarantula-husbandry/internal/domain/attachments"
	"tarantula-husbandry/internal/platform/coerce"
)

var conditionValues = []string{
	string(ConditionStable),
	string(ConditionObservation),
	string(ConditionCritical),
}

// Normalize valida y tipa un body crudo de health entry.
// date es requerida; condition defaultea a Stable.
func Normalize(raw map[string]any, now time.Time) (HealthEntry, *coerce.FieldError) {
	var h HealthEntry

	date, ferr := coerce.Date(raw, "date")
	if ferr != nil {
		return HealthEntry{}, ferr
	}
	if date == nil {
		return HealthEntry{}, coerce.Fail("date", "required")
	}
	h.Date = *date

	for _, f := range []struct {
		key string
		dst *string
	}{
		{"specimen", &h.Specimen},
		{"species", &h.Species},
		{"enclosureSize", &h.EnclosureSize},
		{"behavior", &h.Behavior},
		{"healthIssues", &h.HealthIssues},
		{"treatment", &h.Treatment},
	} {
		s, _, ferr := coerce.String(raw, f.key)
		if ferr != nil {
			return HealthEntry{}, ferr
		}
		*f.dst = s
	}

	for _, f := range []struct {
		key string
		dst **float64
	}{
		{"temperature", &h.Temperature},
		{"humidity", &h.Humidity},
	} {
		v, ferr := coerce.Float(raw, f.key)
		if ferr != nil {
			return HealthEntry{}, ferr
		}
		*f.dst = v
	}

	condition, ferr := coerce.Enum(raw, "condition", conditionValues, string(DefaultCondition))
	if ferr != nil {
		return HealthEntry{}, ferr
	}
	h.Condition = Condition(condition)

	followUp, ferr := coerce.Date(raw, "followUpDate")
	if ferr != nil {
		return HealthEntry{}, ferr
	}
	h.FollowUpDate = followUp

	h.Attachments = attachments.NormalizeList(raw, now)

	return h, nil
}

// NormalizePatch: misma mecánica que entries (overlay + re-normalización).
func NormalizePatch(current HealthEntry, raw map[string]any) (HealthEntry, *coerce.FieldError) {
	merged := toRaw(current)
	for k, v := range raw {
		if v == nil {
			delete(merged, k)
			continue
		}
		merged[k] = v
	}

	h, ferr := Normalize(merged, current.UpdatedAt)
	if ferr != nil {
		return HealthEntry{}, ferr
	}
	h.ID = current.ID
	h.OwnerUserID = current.OwnerUserID
	h.CreatedAt = current.CreatedAt
	return h, nil
}

func toRaw(h HealthEntry) map[string]any {
	b, _ := json.Marshal(h)
	var m map[string]any
	_ = json.Unmarshal(b, &m)
	return m
}
