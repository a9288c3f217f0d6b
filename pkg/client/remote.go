package client

import (
	"context"
	"errors"
	"net/http"

	"tarantula-husbandry/internal/platform/httpclient"
)

// Remote habla con la API usando el bearer token de la sesión.
type Remote struct {
	http  *httpclient.Client
	token string
}

func NewRemote(baseURL, token string) (*Remote, error) {
	hc, err := httpclient.NewWithBaseURL(baseURL, httpclient.DefaultTimeout)
	if err != nil {
		return nil, err
	}
	if hc.BaseURL == "" {
		return nil, errors.New("remote store requires base url")
	}
	return &Remote{http: hc, token: token}, nil
}

func (r *Remote) headers() map[string]string {
	if r.token == "" {
		return nil
	}
	return map[string]string{"Authorization": "Bearer " + r.token}
}

func (r *Remote) ListEntries(ctx context.Context) ([]map[string]any, error) {
	var out []map[string]any
	err := r.http.DoJSON(ctx, http.MethodGet, "/api/logs", r.headers(), nil, &out)
	return out, err
}

func (r *Remote) CreateEntry(ctx context.Context, raw map[string]any) (map[string]any, error) {
	var out map[string]any
	err := r.http.DoJSON(ctx, http.MethodPost, "/api/logs", r.headers(), raw, &out)
	return out, err
}

func (r *Remote) UpdateEntry(ctx context.Context, id string, raw map[string]any) (map[string]any, error) {
	var out map[string]any
	err := r.http.DoJSON(ctx, http.MethodPatch, "/api/logs/"+id, r.headers(), raw, &out)
	return out, translateNotFound(err)
}

func (r *Remote) DeleteEntry(ctx context.Context, id string) error {
	return translateNotFound(r.http.DoJSON(ctx, http.MethodDelete, "/api/logs/"+id, r.headers(), nil, nil))
}

func (r *Remote) ListStacks(ctx context.Context) ([]map[string]any, error) {
	var out []map[string]any
	err := r.http.DoJSON(ctx, http.MethodGet, "/api/research", r.headers(), nil, &out)
	return out, err
}

func (r *Remote) CreateStack(ctx context.Context, raw map[string]any) (map[string]any, error) {
	var out map[string]any
	err := r.http.DoJSON(ctx, http.MethodPost, "/api/research", r.headers(), raw, &out)
	return out, err
}

func (r *Remote) UpdateStack(ctx context.Context, id string, raw map[string]any) (map[string]any, error) {
	var out map[string]any
	err := r.http.DoJSON(ctx, http.MethodPatch, "/api/research/"+id, r.headers(), raw, &out)
	return out, translateNotFound(err)
}

func (r *Remote) DeleteStack(ctx context.Context, id string) error {
	return translateNotFound(r.http.DoJSON(ctx, http.MethodDelete, "/api/research/"+id, r.headers(), nil, nil))
}

func translateNotFound(err error) error {
	var herr *httpclient.HTTPError
	if errors.As(err, &herr) && herr.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	return err
}
