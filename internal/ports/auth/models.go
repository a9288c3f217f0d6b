package auth

// Claims representa la información extraída del token de sesión.
// IsAdmin se setea en el middleware según las allow-lists de env
// (por email o por id de cuenta del proveedor).
type Claims struct {
	UserID  string
	Email   string
	IsAdmin bool
}
