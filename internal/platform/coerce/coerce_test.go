package coerce

import (
	"math"
	"testing"
	"time"
)

func TestString_TrimAndAbsent(t *testing.T) {
	raw := map[string]any{
		"name":  "  Rosie  ",
		"blank": "   ",
		"num":   42,
	}

	if v, present, ferr := String(raw, "name"); ferr != nil || !present || v != "Rosie" {
		t.Fatalf("got %q present=%v err=%v", v, present, ferr)
	}
	// whitespace-only cuenta como ausente
	if _, present, ferr := String(raw, "blank"); ferr != nil || present {
		t.Fatalf("blank should be absent, present=%v err=%v", present, ferr)
	}
	if _, present, ferr := String(raw, "missing"); ferr != nil || present {
		t.Fatalf("missing should be absent, present=%v err=%v", present, ferr)
	}
	if _, _, ferr := String(raw, "num"); ferr == nil || ferr.Field != "num" {
		t.Fatalf("non-string should fail, got %v", ferr)
	}
}

func TestFloat_AcceptsNumberAndNumericString(t *testing.T) {
	raw := map[string]any{
		"a":   8.5,
		"b":   "9.25",
		"c":   "not a number",
		"nan": math.NaN(),
	}

	if f, ferr := Float(raw, "a"); ferr != nil || f == nil || *f != 8.5 {
		t.Fatalf("a: got %v err=%v", f, ferr)
	}
	if f, ferr := Float(raw, "b"); ferr != nil || f == nil || *f != 9.25 {
		t.Fatalf("b: got %v err=%v", f, ferr)
	}
	if _, ferr := Float(raw, "c"); ferr == nil {
		t.Fatalf("c should fail")
	}
	if _, ferr := Float(raw, "nan"); ferr == nil {
		t.Fatalf("NaN should fail")
	}
	if f, ferr := Float(raw, "missing"); ferr != nil || f != nil {
		t.Fatalf("missing: got %v err=%v", f, ferr)
	}
}

func TestInt_RejectsFractions(t *testing.T) {
	raw := map[string]any{"whole": 3.0, "frac": 2.5, "str": "4"}

	if n, ferr := Int(raw, "whole"); ferr != nil || n == nil || *n != 3 {
		t.Fatalf("whole: got %v err=%v", n, ferr)
	}
	if _, ferr := Int(raw, "frac"); ferr == nil {
		t.Fatalf("fraction should fail")
	}
	if n, ferr := Int(raw, "str"); ferr != nil || n == nil || *n != 4 {
		t.Fatalf("str: got %v err=%v", n, ferr)
	}
}

func TestDate_Layouts(t *testing.T) {
	raw := map[string]any{
		"plain":   "2026-03-01",
		"rfc":     "2026-03-01T10:30:00Z",
		"offset":  "2026-03-01T10:30:00+05:00",
		"invalid": "01/03/2026",
	}

	if d, ferr := Date(raw, "plain"); ferr != nil || d == nil || !d.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("plain: got %v err=%v", d, ferr)
	}
	if d, ferr := Date(raw, "rfc"); ferr != nil || d == nil || d.Hour() != 10 {
		t.Fatalf("rfc: got %v err=%v", d, ferr)
	}
	// offsets se normalizan a UTC
	if d, ferr := Date(raw, "offset"); ferr != nil || d == nil || d.Hour() != 5 || d.Location() != time.UTC {
		t.Fatalf("offset: got %v err=%v", d, ferr)
	}
	if _, ferr := Date(raw, "invalid"); ferr == nil {
		t.Fatalf("invalid layout should fail")
	}
	if d, ferr := Date(raw, "missing"); ferr != nil || d != nil {
		t.Fatalf("missing: got %v err=%v", d, ferr)
	}
}

func TestEnum_CaseInsensitiveWithDefault(t *testing.T) {
	allowed := []string{"Pre-molt", "Molt", "Post-molt"}

	raw := map[string]any{"a": "pre-MOLT", "b": "unknown-stage"}

	if v, ferr := Enum(raw, "a", allowed, "Molt"); ferr != nil || v != "Pre-molt" {
		t.Fatalf("a: got %q err=%v", v, ferr)
	}
	// desconocido => default, sin error
	if v, ferr := Enum(raw, "b", allowed, "Molt"); ferr != nil || v != "Molt" {
		t.Fatalf("b: got %q err=%v", v, ferr)
	}
	if v, ferr := Enum(raw, "missing", allowed, "Molt"); ferr != nil || v != "Molt" {
		t.Fatalf("missing: got %q err=%v", v, ferr)
	}
}

func TestStringSlice_DropsJunk(t *testing.T) {
	raw := map[string]any{
		"tags": []any{"husbandry", "  ", 7, "molting"},
	}

	out, ferr := StringSlice(raw, "tags")
	if ferr != nil {
		t.Fatalf("unexpected error: %v", ferr)
	}
	if len(out) != 2 || out[0] != "husbandry" || out[1] != "molting" {
		t.Fatalf("got %v", out)
	}
}
