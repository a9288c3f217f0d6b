package clerk

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"tarantula-husbandry/internal/platform/httpclient"
	"tarantula-husbandry/internal/ports/auth"
)

var (
	ErrClerkNotConfigured = errors.New("clerk client not configured")
	ErrClerkUnauthorized  = errors.New("clerk unauthorized")
	ErrClerkUpstream      = errors.New("clerk upstream error")
)

// Config del cliente Clerk. BaseURL y APIKey vienen de env vars
// (CLERK_BASE_URL, CLERK_API_KEY) en quien lo instancie.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type Client struct {
	http   *httpclient.Client
	apiKey string
}

func NewClient(cfg Config) (*Client, error) {
	hc, err := httpclient.NewWithBaseURL(strings.TrimSpace(cfg.BaseURL), cfg.Timeout)
	if err != nil {
		return nil, err
	}
	return &Client{
		http:   hc,
		apiKey: strings.TrimSpace(cfg.APIKey),
	}, nil
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.http != nil && c.http.BaseURL != "" && c.apiKey != ""
}

// VerifyToken resuelve un session token contra el backend API de Clerk
// y devuelve los claims del usuario.
func (c *Client) VerifyToken(ctx context.Context, token string) (auth.Claims, error) {
	if !c.IsConfigured() {
		return auth.Claims{}, ErrClerkNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrClerkUnauthorized
	}

	var out struct {
		UserID string `json:"user_id"`
		Email  string `json:"email"`
	}

	err := c.http.DoJSON(ctx, http.MethodPost, "/v1/tokens/verify",
		map[string]string{"Authorization": "Bearer " + c.apiKey},
		map[string]string{"token": token},
		&out,
	)
	if err != nil {
		var herr *httpclient.HTTPError
		if errors.As(err, &herr) {
			if herr.StatusCode == http.StatusUnauthorized || herr.StatusCode == http.StatusForbidden {
				return auth.Claims{}, ErrClerkUnauthorized
			}
			return auth.Claims{}, fmt.Errorf("%w: status=%d", ErrClerkUpstream, herr.StatusCode)
		}
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrClerkUpstream, err)
	}

	out.UserID = strings.TrimSpace(out.UserID)
	if out.UserID == "" {
		return auth.Claims{}, errors.New("clerk response missing user_id")
	}

	return auth.Claims{
		UserID: out.UserID,
		Email:  strings.TrimSpace(out.Email),
	}, nil
}
