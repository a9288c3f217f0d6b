package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"tarantula-husbandry/internal/adapters/blobstore"
	"tarantula-husbandry/internal/domain/attachments"
	"tarantula-husbandry/internal/router"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(router.NewRouter(router.Options{
		AuthVerifier: nil,
		Blobs:        blobstore.NewMemory(),
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_EndToEnd_MoltLifecycle(t *testing.T) {
	ts := newTestServer(t)
	userID := "user-1"

	// 1) Crear molt: species requerida, stage default "Molt"
	st, body := doReq(t, ts.URL, "POST", "/api/logs", userID, map[string]any{
		"entryType": "molt",
		"specimen":  "Rosie",
		"species":   "Grammostola rosea",
		"date":      "2026-03-01",
		"oldSize":   8.5,
		"newSize":   9.2,
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create molt, got %d body=%s", st, string(body))
	}

	var created map[string]any
	if err := json.Unmarshal(body, &created); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	entryID, _ := created["id"].(string)
	if entryID == "" {
		t.Fatalf("create molt: missing id body=%s", string(body))
	}
	if stage, _ := created["stage"].(string); stage != "Molt" {
		t.Fatalf("expected default stage Molt, got %q", stage)
	}

	// 2) Listar: aparece
	{
		st, body := doReq(t, ts.URL, "GET", "/api/logs", userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list, got %d body=%s", st, string(body))
		}
		var items []map[string]any
		_ = json.Unmarshal(body, &items)
		if len(items) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(items))
		}
	}

	// 3) PATCH parcial: solo notes cambia, species se conserva
	{
		st, body := doReq(t, ts.URL, "PATCH", "/api/logs/"+entryID, userID, map[string]any{
			"notes": "muda perfecta",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 patch, got %d body=%s", st, string(body))
		}
		var patched map[string]any
		_ = json.Unmarshal(body, &patched)
		if patched["species"] != "Grammostola rosea" {
			t.Fatalf("patch lost species: %v", patched["species"])
		}
		if patched["notes"] != "muda perfecta" {
			t.Fatalf("patch did not apply notes: %v", patched["notes"])
		}
	}

	// 4) DELETE y luego 404
	{
		st, body := doReq(t, ts.URL, "DELETE", "/api/logs/"+entryID, userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 delete, got %d body=%s", st, string(body))
		}
		st, _ = doReq(t, ts.URL, "PATCH", "/api/logs/"+entryID, userID, map[string]any{"notes": "x"})
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 after delete, got %d", st)
		}
	}
}

func TestHTTP_Create_Validation(t *testing.T) {
	ts := newTestServer(t)
	userID := "user-1"

	// Sin entryType => 400 con campo
	{
		st, body := doReq(t, ts.URL, "POST", "/api/logs", userID, map[string]any{
			"date": "2026-03-01",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 without entryType, got %d body=%s", st, string(body))
		}
		var resp struct {
			Field string `json:"field"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Field != "entryType" {
			t.Fatalf("expected field entryType, got %q body=%s", resp.Field, string(body))
		}
	}

	// molt sin species => 400
	{
		st, _ := doReq(t, ts.URL, "POST", "/api/logs", userID, map[string]any{
			"entryType": "molt",
			"date":      "2026-03-01",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 molt without species, got %d", st)
		}
	}

	// feeding sin species está bien; stage en feeding se descarta
	{
		st, body := doReq(t, ts.URL, "POST", "/api/logs", userID, map[string]any{
			"entryType": "feeding",
			"date":      "2026-03-02",
			"prey":      "cricket",
			"stage":     "Pre-molt",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 feeding, got %d body=%s", st, string(body))
		}
		var created map[string]any
		_ = json.Unmarshal(body, &created)
		if _, present := created["stage"]; present {
			t.Fatalf("stage should be dropped on feeding, body=%s", string(body))
		}
		if created["prey"] != "cricket" {
			t.Fatalf("prey lost on feeding: %v", created["prey"])
		}
	}

	// Sin auth => 401
	{
		st, _ := doReq(t, ts.URL, "GET", "/api/logs", "", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 without user, got %d", st)
		}
	}
}

func TestHTTP_OwnershipIsolation(t *testing.T) {
	ts := newTestServer(t)

	entryID := createEntry(t, ts.URL, "user-a", map[string]any{
		"entryType": "feeding",
		"date":      "2026-01-10",
		"prey":      "roach",
	})

	// user-b adivina el id: 404 siempre, nunca 403
	for _, method := range []string{"PATCH", "DELETE"} {
		var payload map[string]any
		if method == "PATCH" {
			payload = map[string]any{"notes": "hacked"}
		}
		st, _ := doReq(t, ts.URL, method, "/api/logs/"+entryID, "user-b", payload)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 for %s by stranger, got %d", method, st)
		}
	}

	// y la lista de user-b sigue vacía
	st, body := doReq(t, ts.URL, "GET", "/api/logs", "user-b", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 list, got %d", st)
	}
	var items []map[string]any
	_ = json.Unmarshal(body, &items)
	if len(items) != 0 {
		t.Fatalf("stranger should see 0 entries, got %d", len(items))
	}
}

func TestHTTP_HealthAndBreedingCRUD(t *testing.T) {
	ts := newTestServer(t)
	userID := "user-1"

	// health log con condition default
	st, body := doReq(t, ts.URL, "POST", "/api/health-logs", userID, map[string]any{
		"specimen": "Rosie",
		"species":  "Grammostola rosea",
		"date":     "2026-04-01",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 health, got %d body=%s", st, string(body))
	}
	var h map[string]any
	_ = json.Unmarshal(body, &h)
	if h["condition"] != "Stable" {
		t.Fatalf("expected default condition Stable, got %v", h["condition"])
	}

	// breeding con status default
	st, body = doReq(t, ts.URL, "POST", "/api/breeding", userID, map[string]any{
		"female":      "Rosie",
		"male":        "Rex",
		"species":     "Grammostola rosea",
		"pairingDate": "2026-04-02",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 breeding, got %d body=%s", st, string(body))
	}
	var b map[string]any
	_ = json.Unmarshal(body, &b)
	if b["status"] != "planned" {
		t.Fatalf("expected default status planned, got %v", b["status"])
	}
	breedingID, _ := b["id"].(string)

	// transición de status por PATCH
	st, body = doReq(t, ts.URL, "PATCH", "/api/breeding/"+breedingID, userID, map[string]any{
		"status":     "egg_sac",
		"eggSacDate": "2026-06-15",
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 breeding patch, got %d body=%s", st, string(body))
	}
	_ = json.Unmarshal(body, &b)
	if b["status"] != "egg_sac" {
		t.Fatalf("expected status egg_sac, got %v", b["status"])
	}
}

func TestHTTP_ResearchStacks(t *testing.T) {
	ts := newTestServer(t)
	userID := "user-1"

	st, body := doReq(t, ts.URL, "POST", "/api/research", userID, map[string]any{
		"name":    "Avicularia care",
		"species": "Avicularia avicularia",
		"notes": []map[string]any{
			{"title": "Humedad", "content": "70-80%", "tags": []string{"husbandry"}},
			{"content": ""}, // nota vacía: se descarta
		},
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 research, got %d body=%s", st, string(body))
	}
	var stack map[string]any
	_ = json.Unmarshal(body, &stack)
	stackID, _ := stack["id"].(string)
	notes, _ := stack["notes"].([]any)
	if len(notes) != 1 {
		t.Fatalf("expected 1 note kept, got %d", len(notes))
	}

	// PATCH reemplaza la lista de notas completa
	st, body = doReq(t, ts.URL, "PATCH", "/api/research/"+stackID, userID, map[string]any{
		"notes": []map[string]any{
			{"title": "Ventilación", "content": "cross-flow"},
			{"title": "Humedad", "content": "70-80%"},
		},
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 research patch, got %d body=%s", st, string(body))
	}
	_ = json.Unmarshal(body, &stack)
	notes, _ = stack["notes"].([]any)
	if len(notes) != 2 {
		t.Fatalf("expected 2 notes after patch, got %d", len(notes))
	}

	// DELETE borra stack y notas juntos
	st, _ = doReq(t, ts.URL, "DELETE", "/api/research/"+stackID, userID, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 research delete, got %d", st)
	}
	st, _ = doReq(t, ts.URL, "GET", "/api/research/"+stackID, userID, nil)
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", st)
	}
}

func TestHTTP_ExportImport_RoundTrip(t *testing.T) {
	ts := newTestServer(t)

	createEntry(t, ts.URL, "user-a", map[string]any{
		"entryType": "molt",
		"species":   "Brachypelma hamorii",
		"date":      "2026-02-01",
	})
	createEntry(t, ts.URL, "user-a", map[string]any{
		"entryType": "feeding",
		"date":      "2026-02-03",
		"prey":      "cricket",
	})
	doReqOK(t, ts.URL, "POST", "/api/research", "user-a", map[string]any{
		"name": "Notas B. hamorii",
	})
	doReqOK(t, ts.URL, "POST", "/api/health-logs", "user-a", map[string]any{
		"date": "2026-02-05",
	})

	// export de A
	st, body := doReq(t, ts.URL, "GET", "/api/export", "user-a", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 export, got %d body=%s", st, string(body))
	}
	var env map[string]any
	_ = json.Unmarshal(body, &env)
	if v, _ := env["version"].(float64); int(v) != 2 {
		t.Fatalf("expected version 2, got %v", env["version"])
	}

	// import en B
	st, rep := doReq(t, ts.URL, "POST", "/api/import", "user-b", env)
	if st != http.StatusOK {
		t.Fatalf("expected 200 import, got %d body=%s", st, string(rep))
	}
	var report struct {
		Success        bool `json:"success"`
		CreatedEntries int  `json:"createdEntries"`
		CreatedStacks  int  `json:"createdStacks"`
		CreatedHealth  int  `json:"createdHealth"`
		Errors         []map[string]any
	}
	_ = json.Unmarshal(rep, &report)
	if !report.Success {
		t.Fatalf("expected success:true, body=%s", string(rep))
	}
	if report.CreatedEntries != 2 || report.CreatedStacks != 1 || report.CreatedHealth != 1 {
		t.Fatalf("unexpected import counts: %+v body=%s", report, string(rep))
	}
	if len(report.Errors) != 0 {
		t.Fatalf("expected no import errors, got %v", report.Errors)
	}

	// los ids de B son nuevos
	_, listA := doReq(t, ts.URL, "GET", "/api/logs", "user-a", nil)
	_, listB := doReq(t, ts.URL, "GET", "/api/logs", "user-b", nil)
	idsA := collectIDs(t, listA)
	idsB := collectIDs(t, listB)
	for id := range idsB {
		if _, clash := idsA[id]; clash {
			t.Fatalf("imported entry reused id %s", id)
		}
	}

	// segundo import: no es idempotente, duplica
	st, rep = doReq(t, ts.URL, "POST", "/api/import", "user-b", env)
	if st != http.StatusOK {
		t.Fatalf("expected 200 second import, got %d", st)
	}
	_, listB = doReq(t, ts.URL, "GET", "/api/logs", "user-b", nil)
	if got := len(collectIDs(t, listB)); got != 4 {
		t.Fatalf("expected 4 entries after double import, got %d", got)
	}
}

func TestHTTP_Import_PartialFailure(t *testing.T) {
	ts := newTestServer(t)

	st, body := doReq(t, ts.URL, "POST", "/api/import", "user-1", map[string]any{
		"version": 2,
		"entries": []map[string]any{
			{"entryType": "feeding", "date": "2026-02-03", "prey": "roach"},
			{"entryType": "feeding", "id": "broken-1"}, // sin date
		},
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 import with partial failure, got %d body=%s", st, string(body))
	}

	var report struct {
		CreatedEntries int              `json:"createdEntries"`
		Errors         []map[string]any `json:"errors"`
	}
	_ = json.Unmarshal(body, &report)
	if report.CreatedEntries != 1 {
		t.Fatalf("expected 1 created entry, got %d body=%s", report.CreatedEntries, string(body))
	}
	if len(report.Errors) != 1 {
		t.Fatalf("expected 1 error, got %d body=%s", len(report.Errors), string(body))
	}
	if report.Errors[0]["collection"] != "entries" || report.Errors[0]["id"] != "broken-1" {
		t.Fatalf("error should locate the broken record: %v", report.Errors[0])
	}
}

func TestHTTP_Attachment_EmbedRoundTrip(t *testing.T) {
	ts := newTestServer(t)

	payload := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x01, 0x02}

	// A crea un entry con el binario inline (como hace el import)
	dataURL := attachments.EncodeDataURL("image/png", payload)
	st, body := doReq(t, ts.URL, "POST", "/api/import", "user-a", map[string]any{
		"version": 2,
		"entries": []map[string]any{
			{
				"entryType": "molt",
				"species":   "Grammostola rosea",
				"date":      "2026-03-01",
				"attachments": []map[string]any{
					{"name": "exuvia.png", "dataUrl": dataURL},
				},
			},
		},
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 import with attachment, got %d body=%s", st, string(body))
	}

	// export con embed=1: el binario vuelve inline, byte a byte
	st, body = doReq(t, ts.URL, "GET", "/api/export?embed=1", "user-a", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 export, got %d", st)
	}

	var env struct {
		Entries []struct {
			Attachments []struct {
				URL     string `json:"url"`
				DataURL string `json:"dataUrl"`
			} `json:"attachments"`
		} `json:"entries"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("invalid export json: %v", err)
	}
	if len(env.Entries) != 1 || len(env.Entries[0].Attachments) != 1 {
		t.Fatalf("expected 1 entry with 1 attachment, body=%s", string(body))
	}
	att := env.Entries[0].Attachments[0]
	if att.URL == "" {
		t.Fatalf("attachment should have been rehydrated to a stored url")
	}
	if att.DataURL == "" {
		t.Fatalf("embed=1 should inline the binary")
	}
	_, data, err := attachments.DecodeDataURL(att.DataURL)
	if err != nil {
		t.Fatalf("decode embedded dataUrl: %v", err)
	}
	if !bytes.Equal(data, payload) {
		t.Fatalf("embedded bytes differ: got %v want %v", data, payload)
	}
}

func TestHTTP_EmbedExport_DoesNotTouchStoredRecords(t *testing.T) {
	ts := newTestServer(t)

	dataURL := attachments.EncodeDataURL("image/png", []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
	st, body := doReq(t, ts.URL, "POST", "/api/import", "user-a", map[string]any{
		"version": 2,
		"entries": []map[string]any{
			{
				"entryType": "molt",
				"species":   "Grammostola rosea",
				"date":      "2026-03-01",
				"attachments": []map[string]any{
					{"name": "exuvia.png", "dataUrl": dataURL},
				},
			},
		},
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 import, got %d body=%s", st, string(body))
	}

	// el embed trabaja sobre una copia: exportar no muta lo almacenado
	st, _ = doReq(t, ts.URL, "GET", "/api/export?embed=1", "user-a", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 export, got %d", st)
	}

	assertNoStoredDataURL := func(path string, body []byte) {
		t.Helper()
		var items []struct {
			Attachments []struct {
				URL     string `json:"url"`
				DataURL string `json:"dataUrl"`
			} `json:"attachments"`
		}
		if err := json.Unmarshal(body, &items); err != nil {
			t.Fatalf("%s: invalid json: %v", path, err)
		}
		if len(items) != 1 || len(items[0].Attachments) != 1 {
			t.Fatalf("%s: expected 1 record with 1 attachment, body=%s", path, string(body))
		}
		att := items[0].Attachments[0]
		if att.DataURL != "" {
			t.Fatalf("%s: stored record carries dataUrl after embed export: %q", path, att.DataURL)
		}
		if att.URL == "" {
			t.Fatalf("%s: stored attachment lost its url", path)
		}
	}

	st, body = doReq(t, ts.URL, "GET", "/api/logs", "user-a", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 list, got %d", st)
	}
	assertNoStoredDataURL("/api/logs", body)

	// y un export sin embed tampoco trae binarios inline
	st, body = doReq(t, ts.URL, "GET", "/api/export", "user-a", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 plain export, got %d", st)
	}
	var env struct {
		Entries []struct {
			Attachments []struct {
				DataURL string `json:"dataUrl"`
			} `json:"attachments"`
		} `json:"entries"`
	}
	_ = json.Unmarshal(body, &env)
	if len(env.Entries) != 1 || len(env.Entries[0].Attachments) != 1 {
		t.Fatalf("plain export lost the attachment, body=%s", string(body))
	}
	if env.Entries[0].Attachments[0].DataURL != "" {
		t.Fatalf("plain export should not inline binaries: %q", env.Entries[0].Attachments[0].DataURL)
	}
}

func TestHTTP_DirectCreate_NeverPersistsDataURL(t *testing.T) {
	ts := newTestServer(t)
	userID := "user-1"

	// un POST directo no es un import: el dataUrl se descarta, la url queda
	st, body := doReq(t, ts.URL, "POST", "/api/logs", userID, map[string]any{
		"entryType": "feeding",
		"species":   "Brachypelma hamorii",
		"date":      "2026-03-02",
		"attachments": []map[string]any{
			{"name": "prey.png", "url": "/uploads/user-1/abc-prey.png", "dataUrl": attachments.EncodeDataURL("image/png", []byte{1, 2, 3, 4})},
			{"name": "inline-only.png", "dataUrl": attachments.EncodeDataURL("image/png", []byte{5, 6})},
		},
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", st, string(body))
	}

	st, body = doReq(t, ts.URL, "GET", "/api/logs", userID, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 list, got %d", st)
	}
	var items []struct {
		Attachments []struct {
			URL     string `json:"url"`
			DataURL string `json:"dataUrl"`
		} `json:"attachments"`
	}
	if err := json.Unmarshal(body, &items); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 entry, body=%s", string(body))
	}
	// el attachment sin url no sobrevive; el otro queda sin dataUrl
	if len(items[0].Attachments) != 1 {
		t.Fatalf("expected only the url-backed attachment, got %v", items[0].Attachments)
	}
	att := items[0].Attachments[0]
	if att.URL != "/uploads/user-1/abc-prey.png" {
		t.Fatalf("unexpected url: %q", att.URL)
	}
	if att.DataURL != "" {
		t.Fatalf("dataUrl persisted on direct create: %q", att.DataURL)
	}
}

func TestHTTP_AccountPassword(t *testing.T) {
	ts := newTestServer(t)
	userID := "user-1"

	// sin contraseña aún
	st, body := doReq(t, ts.URL, "GET", "/api/account/password", userID, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 password status, got %d", st)
	}
	var status struct {
		HasPassword bool `json:"hasPassword"`
	}
	_ = json.Unmarshal(body, &status)
	if status.HasPassword {
		t.Fatalf("fresh account should not have password")
	}

	// corta => 400
	st, _ = doReq(t, ts.URL, "PATCH", "/api/account/password", userID, map[string]any{
		"newPassword": "short",
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 short password, got %d", st)
	}

	// set inicial
	st, _ = doReq(t, ts.URL, "PATCH", "/api/account/password", userID, map[string]any{
		"newPassword": "correct-horse-battery",
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 set password, got %d", st)
	}

	st, body = doReq(t, ts.URL, "GET", "/api/account/password", userID, nil)
	_ = json.Unmarshal(body, &status)
	if st != http.StatusOK || !status.HasPassword {
		t.Fatalf("expected hasPassword true, got %d %s", st, string(body))
	}

	// cambio con current equivocada => 400; tras 5 fallos => 429
	for i := 0; i < 5; i++ {
		st, _ = doReq(t, ts.URL, "PATCH", "/api/account/password", userID, map[string]any{
			"currentPassword": "wrong",
			"newPassword":     "otra-clave-larga",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("attempt %d: expected 400 wrong current, got %d", i, st)
		}
	}
	st, _ = doReq(t, ts.URL, "PATCH", "/api/account/password", userID, map[string]any{
		"currentPassword": "wrong",
		"newPassword":     "otra-clave-larga",
	})
	if st != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after 5 failures, got %d", st)
	}
}

func TestHTTP_DeleteAccount_Cascades(t *testing.T) {
	ts := newTestServer(t)
	userID := "user-1"

	createEntry(t, ts.URL, userID, map[string]any{
		"entryType": "water",
		"date":      "2026-05-01",
	})
	doReqOK(t, ts.URL, "POST", "/api/research", userID, map[string]any{"name": "x"})

	st, _ := doReq(t, ts.URL, "DELETE", "/api/account/", userID, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 delete account, got %d", st)
	}

	st, body := doReq(t, ts.URL, "GET", "/api/logs", userID, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 list after delete, got %d", st)
	}
	var items []map[string]any
	_ = json.Unmarshal(body, &items)
	if len(items) != 0 {
		t.Fatalf("entries should be gone after account delete, got %d", len(items))
	}
	st, body = doReq(t, ts.URL, "GET", "/api/research", userID, nil)
	var stacks []map[string]any
	_ = json.Unmarshal(body, &stacks)
	if st != http.StatusOK || len(stacks) != 0 {
		t.Fatalf("research should be gone after account delete, got %d %s", st, string(body))
	}
}

func createEntry(t *testing.T, baseURL, userID string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/api/logs", userID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create entry, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create entry: missing id body=%s", string(body))
	}
	return resp.ID
}

func collectIDs(t *testing.T, listBody []byte) map[string]struct{} {
	t.Helper()
	var items []struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(listBody, &items); err != nil {
		t.Fatalf("invalid list json: %v body=%s", err, string(listBody))
	}
	out := make(map[string]struct{}, len(items))
	for _, it := range items {
		out[it.ID] = struct{}{}
	}
	return out
}

func doReqOK(t *testing.T, baseURL, method, path, debugUserID string, body any) {
	t.Helper()
	st, respBody := doReq(t, baseURL, method, path, debugUserID, body)
	if st != http.StatusOK && st != http.StatusCreated {
		t.Fatalf("expected 2xx %s %s, got %d body=%s", method, path, st, string(respBody))
	}
}

func doReq(t *testing.T, baseURL, method, path, debugUserID string, body any) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, reader)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if debugUserID != "" {
		req.Header.Set("X-Debug-User-ID", debugUserID)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, respBody
}
