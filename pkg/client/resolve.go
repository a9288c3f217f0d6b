package client

import (
	"context"
	"net/http"

	"tarantula-husbandry/internal/platform/httpclient"
)

// Options para resolver el modo de datos de la sesión.
type Options struct {
	// BaseURL de la API. Vacío fuerza modo local.
	BaseURL string

	// Token de sesión. Vacío fuerza modo local.
	Token string

	// LocalPath es el archivo de datos del invitado.
	LocalPath string
}

// Resolve fija el modo de la sesión: sondea GET /api/account/password con
// el token; si responde 200 el usuario está autenticado y se usa Remote,
// en cualquier otro caso se cae a Local. El modo no cambia durante la
// sesión.
func Resolve(ctx context.Context, opts Options) (Store, Mode, error) {
	if opts.BaseURL != "" && opts.Token != "" {
		hc, err := httpclient.NewWithBaseURL(opts.BaseURL, httpclient.DefaultTimeout)
		if err == nil {
			probe := hc.DoJSON(ctx, http.MethodGet, "/api/account/password",
				map[string]string{"Authorization": "Bearer " + opts.Token}, nil, nil)
			if probe == nil {
				remote, err := NewRemote(opts.BaseURL, opts.Token)
				if err != nil {
					return nil, "", err
				}
				return remote, ModeRemote, nil
			}
		}
	}

	local, err := NewLocal(opts.LocalPath)
	if err != nil {
		return nil, "", err
	}
	return local, ModeLocal, nil
}
