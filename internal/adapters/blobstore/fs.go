package blobstore

import (
	"context"
	"fmt"
	"io"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"

	"tarantula-husbandry/internal/ports/blob"

	"github.com/google/uuid"
)

// urlPrefix es donde el router monta el FileServer del backend fs.
const urlPrefix = "/uploads/"

type fsStore struct {
	root string
}

// NewFS guarda objetos bajo root/{owner}/{uuid}-{filename}.
func NewFS(root string) (blob.Store, error) {
	if strings.TrimSpace(root) == "" {
		root = "./uploads"
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &fsStore{root: root}, nil
}

func (s *fsStore) Put(ctx context.Context, ownerID, filename string, r io.Reader, contentType string) (blob.Info, error) {
	owner := sanitizeSegment(ownerID)
	if owner == "" {
		return blob.Info{}, fmt.Errorf("invalid owner id")
	}
	name := sanitizeSegment(filename)
	if name == "" {
		name = "file"
	}

	key := owner + "/" + uuid.NewString() + "-" + name

	dir := filepath.Join(s.root, owner)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return blob.Info{}, err
	}

	dst := filepath.Join(s.root, filepath.FromSlash(key))
	f, err := os.Create(dst)
	if err != nil {
		return blob.Info{}, err
	}
	n, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(dst)
		return blob.Info{}, err
	}

	if contentType == "" {
		contentType = mime.TypeByExtension(path.Ext(name))
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return blob.Info{
		Key:         key,
		URL:         urlPrefix + key,
		ContentType: contentType,
		Size:        n,
	}, nil
}

func (s *fsStore) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	clean, err := validKey(key)
	if err != nil {
		return nil, "", err
	}
	f, err := os.Open(filepath.Join(s.root, filepath.FromSlash(clean)))
	if err != nil {
		return nil, "", err
	}
	contentType := mime.TypeByExtension(path.Ext(clean))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return f, contentType, nil
}

func (s *fsStore) KeyFromURL(u string) string {
	// Acepta tanto /uploads/... como URLs absolutas que lo contengan.
	if i := strings.Index(u, urlPrefix); i >= 0 {
		key := u[i+len(urlPrefix):]
		if _, err := validKey(key); err == nil {
			return key
		}
	}
	return ""
}

// Root expone el directorio base (el router monta el FileServer ahí).
func (s *fsStore) Root() string {
	return s.root
}

// validKey rechaza claves con traversal o absolutas.
func validKey(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" || strings.HasPrefix(key, "/") || strings.Contains(key, "\\") {
		return "", fmt.Errorf("invalid key")
	}
	clean := path.Clean(key)
	if clean != key || strings.HasPrefix(clean, "..") || strings.Contains(clean, "../") {
		return "", fmt.Errorf("invalid key")
	}
	return clean, nil
}

// sanitizeSegment deja un segmento de path seguro: solo el base name,
// sin separadores ni puntos dobles.
func sanitizeSegment(s string) string {
	s = strings.TrimSpace(s)
	s = path.Base(strings.ReplaceAll(s, "\\", "/"))
	if s == "." || s == ".." || s == "/" {
		return ""
	}
	return s
}
