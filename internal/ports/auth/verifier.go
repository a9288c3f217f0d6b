package auth

import "context"

// AuthVerifier verifica un token de sesión contra el proveedor externo
// y devuelve claims o error. La app no maneja login/signup propios.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
