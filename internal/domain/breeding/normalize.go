package breeding

import (
	"encoding/json"
	"time"

	"tarantula-husbandry/internal/domain/attachments"
	"tarantula-husbandry/internal/platform/coerce"
)

var statusValues = []string{
	string(StatusPlanned),
	string(StatusPaired),
	string(StatusEggSac),
	string(StatusHatched),
	string(StatusFailed),
}

// Normalize valida y tipa un body crudo de breeding entry.
// pairingDate es requerida; status defaultea a planned.
func Normalize(raw map[string]any, now time.Time) (BreedingEntry, *coerce.FieldError) {
	var b BreedingEntry

	pairing, ferr := coerce.Date(raw, "pairingDate")
	if ferr != nil {
		return BreedingEntry{}, ferr
	}
	if pairing == nil {
		return BreedingEntry{}, coerce.Fail("pairingDate", "required")
	}
	b.PairingDate = *pairing

	for _, f := range []struct {
		key string
		dst *string
	}{
		{"female", &b.Female},
		{"male", &b.Male},
		{"species", &b.Species},
		{"pairingNotes", &b.PairingNotes},
		{"eggSacStatus", &b.EggSacStatus},
	} {
		s, _, ferr := coerce.String(raw, f.key)
		if ferr != nil {
			return BreedingEntry{}, ferr
		}
		*f.dst = s
	}

	status, ferr := coerce.Enum(raw, "status", statusValues, string(DefaultStatus))
	if ferr != nil {
		return BreedingEntry{}, ferr
	}
	b.Status = Status(status)

	for _, f := range []struct {
		key string
		dst **time.Time
	}{
		{"eggSacDate", &b.EggSacDate},
		{"hatchDate", &b.HatchDate},
		{"followUpDate", &b.FollowUpDate},
	} {
		t, ferr := coerce.Date(raw, f.key)
		if ferr != nil {
			return BreedingEntry{}, ferr
		}
		*f.dst = t
	}

	for _, f := range []struct {
		key string
		dst **int
	}{
		{"eggSacCount", &b.EggSacCount},
		{"slingCount", &b.SlingCount},
	} {
		n, ferr := coerce.Int(raw, f.key)
		if ferr != nil {
			return BreedingEntry{}, ferr
		}
		*f.dst = n
	}

	b.Attachments = attachments.NormalizeList(raw, now)

	return b, nil
}

func NormalizePatch(current BreedingEntry, raw map[string]any) (BreedingEntry, *coerce.FieldError) {
	merged := toRaw(current)
	for k, v := range raw {
		if v == nil {
			delete(merged, k)
			continue
		}
		merged[k] = v
	}

	b, ferr := Normalize(merged, current.UpdatedAt)
	if ferr != nil {
		return BreedingEntry{}, ferr
	}
	b.ID = current.ID
	b.OwnerUserID = current.OwnerUserID
	b.CreatedAt = current.CreatedAt
	return b, nil
}

func toRaw(b BreedingEntry) map[string]any {
	buf, _ := json.Marshal(b)
	var m map[string]any
	_ = json.Unmarshal(buf, &m)
	return m
}
