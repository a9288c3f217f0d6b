package blobstore

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
)

func TestFS_PutOpenRoundTrip(t *testing.T) {
	store, err := NewFS(t.TempDir())
	if err != nil {
		t.Fatalf("NewFS: %v", err)
	}

	payload := []byte("not really a png")
	info, err := store.Put(context.Background(), "user-1", "molt.png", bytes.NewReader(payload), "image/png")
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if info.Size != int64(len(payload)) {
		t.Fatalf("size: got %d want %d", info.Size, len(payload))
	}
	if !strings.HasPrefix(info.Key, "user-1/") {
		t.Fatalf("key should be namespaced by owner: %q", info.Key)
	}
	if !strings.HasPrefix(info.URL, "/uploads/user-1/") {
		t.Fatalf("unexpected url: %q", info.URL)
	}
	if info.ContentType != "image/png" {
		t.Fatalf("content type: %q", info.ContentType)
	}

	rc, contentType, err := store.Open(context.Background(), info.Key)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer rc.Close()
	got, _ := io.ReadAll(rc)
	if !bytes.Equal(got, payload) {
		t.Fatalf("round trip mismatch: %q", got)
	}
	if contentType != "image/png" {
		t.Fatalf("open content type: %q", contentType)
	}
}

func TestFS_KeyFromURL(t *testing.T) {
	store, err := NewFS(t.TempDir())
	if err != nil {
		t.Fatalf("NewFS: %v", err)
	}

	cases := []struct {
		url  string
		want string
	}{
		{"/uploads/user-1/abc-molt.png", "user-1/abc-molt.png"},
		{"https://api.example.com/uploads/user-1/abc-molt.png", "user-1/abc-molt.png"},
		{"https://elsewhere.com/photo.png", ""},
		{"/uploads/../etc/passwd", ""},
	}
	for _, tc := range cases {
		if got := store.KeyFromURL(tc.url); got != tc.want {
			t.Fatalf("KeyFromURL(%q) = %q, want %q", tc.url, got, tc.want)
		}
	}
}

func TestFS_RejectsTraversal(t *testing.T) {
	store, err := NewFS(t.TempDir())
	if err != nil {
		t.Fatalf("NewFS: %v", err)
	}

	for _, key := range []string{"../secret", "a/../../b", "/abs/path", "a\\b"} {
		if _, _, err := store.Open(context.Background(), key); err == nil {
			t.Fatalf("Open(%q) should fail", key)
		}
	}

	// un filename con separadores se reduce al base name
	info, err := store.Put(context.Background(), "user-1", "../../evil.png", bytes.NewReader([]byte("x")), "image/png")
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if strings.Contains(info.Key, "..") {
		t.Fatalf("key contains traversal: %q", info.Key)
	}
}
