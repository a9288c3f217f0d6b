package webhook

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tarantula-husbandry/internal/domain/entries"
	"tarantula-husbandry/internal/platform/logger"
)

func TestSyncer_DeliversWithSecret(t *testing.T) {
	received := make(chan *http.Request, 1)
	bodies := make(chan []byte, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		bodies <- body
		received <- r
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	s := New(srv.URL, "shh", logger.NewFromEnv())
	s.EntryChanged(entries.Entry{
		ID:      "e-1",
		Kind:    entries.KindMolt,
		Species: "Grammostola rosea",
		Date:    time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	})

	select {
	case r := <-received:
		if got := r.Header.Get("X-Sync-Secret"); got != "shh" {
			t.Fatalf("expected secret header, got %q", got)
		}
		var payload struct {
			Event string `json:"event"`
			Entry struct {
				ID string `json:"id"`
			} `json:"entry"`
		}
		if err := json.Unmarshal(<-bodies, &payload); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		if payload.Event != "molt.changed" || payload.Entry.ID != "e-1" {
			t.Fatalf("unexpected payload: %+v", payload)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("webhook was never delivered")
	}
}

func TestSyncer_NilWhenUnconfigured(t *testing.T) {
	if s := New("", "secret", logger.NewFromEnv()); s != nil {
		t.Fatalf("expected nil syncer without url")
	}

	// un syncer nil no entrega ni paniquea
	var s *Syncer
	s.EntryChanged(entries.Entry{ID: "e-1"})
}
