// Package client implementa el enrutado de modo de datos para frontends
// y herramientas CLI: un invitado trabaja contra un archivo local, un
// usuario autenticado contra la API. El modo se fija una vez por sesión
// en Resolve; los callers no deben asumir modo antes de eso.
package client

import "context"

// Store es la vista mínima que necesita una UI: entries crudos y research
// stacks crudos, como mapas JSON. La validación fuerte vive en el server;
// el modo local guarda lo que recibe.
type Store interface {
	ListEntries(ctx context.Context) ([]map[string]any, error)
	CreateEntry(ctx context.Context, raw map[string]any) (map[string]any, error)
	UpdateEntry(ctx context.Context, id string, raw map[string]any) (map[string]any, error)
	DeleteEntry(ctx context.Context, id string) error

	ListStacks(ctx context.Context) ([]map[string]any, error)
	CreateStack(ctx context.Context, raw map[string]any) (map[string]any, error)
	UpdateStack(ctx context.Context, id string, raw map[string]any) (map[string]any, error)
	DeleteStack(ctx context.Context, id string) error
}

// Mode indica contra qué backend quedó resuelta la sesión.
type Mode string

const (
	ModeLocal  Mode = "local"
	ModeRemote Mode = "remote"
)
