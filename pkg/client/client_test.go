package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
)

func TestLocal_EntryCRUD(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocal(filepath.Join(t.TempDir(), "data.json"))
	if err != nil {
		t.Fatalf("NewLocal: %v", err)
	}

	created, err := store.CreateEntry(ctx, map[string]any{
		"entryType": "molt",
		"species":   "Grammostola rosea",
		"date":      "2026-03-01",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	id, _ := created["id"].(string)
	if id == "" {
		t.Fatalf("create should assign an id")
	}
	if created["createdAt"] == nil || created["updatedAt"] == nil {
		t.Fatalf("create should stamp timestamps: %v", created)
	}

	items, err := store.ListEntries(ctx)
	if err != nil || len(items) != 1 {
		t.Fatalf("list: %v items=%d", err, len(items))
	}

	patched, err := store.UpdateEntry(ctx, id, map[string]any{
		"notes":   "muda ok",
		"species": nil, // null limpia
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if patched["notes"] != "muda ok" {
		t.Fatalf("notes not patched: %v", patched)
	}
	if _, present := patched["species"]; present {
		t.Fatalf("null should remove species: %v", patched)
	}
	if patched["id"] != id {
		t.Fatalf("id must survive patch")
	}

	if _, err := store.UpdateEntry(ctx, "nope", map[string]any{"notes": "x"}); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := store.DeleteEntry(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := store.DeleteEntry(ctx, id); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound on double delete, got %v", err)
	}
}

func TestLocal_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data.json")

	first, _ := NewLocal(path)
	if _, err := first.CreateStack(ctx, map[string]any{"name": "Notas"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	second, _ := NewLocal(path)
	stacks, err := second.ListStacks(ctx)
	if err != nil || len(stacks) != 1 {
		t.Fatalf("reopened store lost data: %v items=%d", err, len(stacks))
	}
	if stacks[0]["name"] != "Notas" {
		t.Fatalf("got %v", stacks[0])
	}
}

func TestResolve_ModeSelection(t *testing.T) {
	ctx := context.Background()

	authed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/account/password" && r.Header.Get("Authorization") == "Bearer good-token" {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"hasPassword":false}`))
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer authed.Close()

	// token válido => remote
	store, mode, err := Resolve(ctx, Options{
		BaseURL:   authed.URL,
		Token:     "good-token",
		LocalPath: filepath.Join(t.TempDir(), "data.json"),
	})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if mode != ModeRemote {
		t.Fatalf("expected remote mode, got %q", mode)
	}
	if _, ok := store.(*Remote); !ok {
		t.Fatalf("expected *Remote, got %T", store)
	}

	// token rechazado => local
	_, mode, err = Resolve(ctx, Options{
		BaseURL:   authed.URL,
		Token:     "bad-token",
		LocalPath: filepath.Join(t.TempDir(), "data.json"),
	})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if mode != ModeLocal {
		t.Fatalf("expected local fallback, got %q", mode)
	}

	// sin token => local directo, sin sondear
	_, mode, err = Resolve(ctx, Options{
		LocalPath: filepath.Join(t.TempDir(), "data.json"),
	})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if mode != ModeLocal {
		t.Fatalf("expected local without token, got %q", mode)
	}
}

func TestRemote_TranslatesNotFound(t *testing.T) {
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"entry not found"}`))
	}))
	defer srv.Close()

	remote, err := NewRemote(srv.URL, "token")
	if err != nil {
		t.Fatalf("NewRemote: %v", err)
	}
	if err := remote.DeleteEntry(ctx, "ghost"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := remote.UpdateStack(ctx, "ghost", map[string]any{"name": "x"}); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
