package webhook

import (
	"context"
	"net/http"
	"strings"
	"time"

	"tarantula-husbandry/internal/domain/entries"
	"tarantula-husbandry/internal/platform/httpclient"
	"tarantula-husbandry/internal/platform/logger"
)

// Syncer notifica molts a un webhook externo (p.ej. un bot de Discord o
// una hoja de cálculo del criadero). Fire-and-forget: el POST corre en
// goroutine propia, los errores se loguean y se descartan; un webhook
// caído jamás afecta el request que originó el cambio.
type Syncer struct {
	http    *httpclient.Client
	url     string
	secret  string
	log     logger.Logger
	timeout time.Duration
}

// New devuelve nil si no hay URL configurada: entries.Service tolera
// un Syncer nil.
func New(webhookURL, secret string, log logger.Logger) *Syncer {
	webhookURL = strings.TrimSpace(webhookURL)
	if webhookURL == "" {
		return nil
	}
	return &Syncer{
		http:    httpclient.New(httpclient.DefaultTimeout),
		url:     webhookURL,
		secret:  strings.TrimSpace(secret),
		log:     log,
		timeout: httpclient.DefaultTimeout,
	}
}

func (s *Syncer) EntryChanged(e entries.Entry) {
	if s == nil {
		return
	}
	go s.deliver(e)
}

func (s *Syncer) deliver(e entries.Entry) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	headers := map[string]string{}
	if s.secret != "" {
		headers["X-Sync-Secret"] = s.secret
	}

	payload := map[string]any{
		"event": "molt.changed",
		"entry": e,
	}

	if err := s.http.DoJSON(ctx, http.MethodPost, s.url, headers, payload, nil); err != nil {
		s.log.Warn("molt webhook falló", map[string]any{"error": err.Error()})
	}
}
