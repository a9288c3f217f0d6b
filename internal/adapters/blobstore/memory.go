package blobstore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"tarantula-husbandry/internal/ports/blob"

	"github.com/google/uuid"
)

type memObject struct {
	data        []byte
	contentType string
}

type memStore struct {
	mu      sync.RWMutex
	objects map[string]memObject
}

// NewMemory guarda objetos en un mapa. Solo para tests.
func NewMemory() blob.Store {
	return &memStore{objects: make(map[string]memObject)}
}

func (s *memStore) Put(ctx context.Context, ownerID, filename string, r io.Reader, contentType string) (blob.Info, error) {
	owner := sanitizeSegment(ownerID)
	if owner == "" {
		return blob.Info{}, fmt.Errorf("invalid owner id")
	}
	name := sanitizeSegment(filename)
	if name == "" {
		name = "file"
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return blob.Info{}, err
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := owner + "/" + uuid.NewString() + "-" + name

	s.mu.Lock()
	s.objects[key] = memObject{data: data, contentType: contentType}
	s.mu.Unlock()

	return blob.Info{
		Key:         key,
		URL:         urlPrefix + key,
		ContentType: contentType,
		Size:        int64(len(data)),
	}, nil
}

func (s *memStore) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	s.mu.RLock()
	obj, ok := s.objects[key]
	s.mu.RUnlock()
	if !ok {
		return nil, "", fmt.Errorf("object not found: %s", key)
	}
	return io.NopCloser(bytes.NewReader(obj.data)), obj.contentType, nil
}

func (s *memStore) KeyFromURL(u string) string {
	if i := strings.Index(u, urlPrefix); i >= 0 {
		return u[i+len(urlPrefix):]
	}
	return ""
}
