package client

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("record not found")

// localFile es el layout del archivo de datos de un invitado.
type localFile struct {
	Entries []map[string]any `json:"entries"`
	Stacks  []map[string]any `json:"research"`
}

// Local guarda todo en un único archivo JSON, síncrono y con mutex.
// Los ids los genera el cliente; al migrar a remoto (import) el server
// los reemplaza de todas formas.
type Local struct {
	mu   sync.Mutex
	path string
}

func NewLocal(path string) (*Local, error) {
	if path == "" {
		return nil, errors.New("local store path required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return &Local{path: path}, nil
}

func (l *Local) ListEntries(ctx context.Context) ([]map[string]any, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	f, err := l.load()
	if err != nil {
		return nil, err
	}
	return f.Entries, nil
}

func (l *Local) CreateEntry(ctx context.Context, raw map[string]any) (map[string]any, error) {
	return l.create(raw, func(f *localFile, rec map[string]any) {
		f.Entries = append(f.Entries, rec)
	})
}

func (l *Local) UpdateEntry(ctx context.Context, id string, raw map[string]any) (map[string]any, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	f, err := l.load()
	if err != nil {
		return nil, err
	}
	rec, err := patchInPlace(f.Entries, id, raw)
	if err != nil {
		return nil, err
	}
	return rec, l.save(f)
}

func (l *Local) DeleteEntry(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	f, err := l.load()
	if err != nil {
		return err
	}
	out, removed := removeByID(f.Entries, id)
	if !removed {
		return ErrNotFound
	}
	f.Entries = out
	return l.save(f)
}

func (l *Local) ListStacks(ctx context.Context) ([]map[string]any, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	f, err := l.load()
	if err != nil {
		return nil, err
	}
	return f.Stacks, nil
}

func (l *Local) CreateStack(ctx context.Context, raw map[string]any) (map[string]any, error) {
	return l.create(raw, func(f *localFile, rec map[string]any) {
		f.Stacks = append(f.Stacks, rec)
	})
}

func (l *Local) UpdateStack(ctx context.Context, id string, raw map[string]any) (map[string]any, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	f, err := l.load()
	if err != nil {
		return nil, err
	}
	rec, err := patchInPlace(f.Stacks, id, raw)
	if err != nil {
		return nil, err
	}
	return rec, l.save(f)
}

func (l *Local) DeleteStack(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	f, err := l.load()
	if err != nil {
		return err
	}
	out, removed := removeByID(f.Stacks, id)
	if !removed {
		return ErrNotFound
	}
	f.Stacks = out
	return l.save(f)
}

func (l *Local) create(raw map[string]any, appendTo func(*localFile, map[string]any)) (map[string]any, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := l.load()
	if err != nil {
		return nil, err
	}

	rec := make(map[string]any, len(raw)+3)
	for k, v := range raw {
		rec[k] = v
	}
	now := time.Now().UTC().Format(time.RFC3339)
	rec["id"] = uuid.NewString()
	rec["createdAt"] = now
	rec["updatedAt"] = now

	appendTo(f, rec)
	return rec, l.save(f)
}

func (l *Local) load() (*localFile, error) {
	f := &localFile{
		Entries: []map[string]any{},
		Stacks:  []map[string]any{},
	}
	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return f, nil
		}
		return nil, err
	}
	if len(data) == 0 {
		return f, nil
	}
	if err := json.Unmarshal(data, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (l *Local) save(f *localFile) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return err
	}
	// Escritura atómica: tmp + rename para no dejar el archivo a medias.
	tmp := l.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, l.path)
}

func patchInPlace(records []map[string]any, id string, raw map[string]any) (map[string]any, error) {
	for _, rec := range records {
		if rid, _ := rec["id"].(string); rid == id {
			for k, v := range raw {
				if k == "id" || k == "createdAt" {
					continue
				}
				if v == nil {
					delete(rec, k)
					continue
				}
				rec[k] = v
			}
			rec["updatedAt"] = time.Now().UTC().Format(time.RFC3339)
			return rec, nil
		}
	}
	return nil, ErrNotFound
}

func removeByID(records []map[string]any, id string) ([]map[string]any, bool) {
	out := records[:0]
	removed := false
	for _, rec := range records {
		if rid, _ := rec["id"].(string); rid == id {
			removed = true
			continue
		}
		out = append(out, rec)
	}
	return out, removed
}
