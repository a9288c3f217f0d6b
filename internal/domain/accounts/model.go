package accounts

import "time"

// User guarda lo mínimo que el backend necesita conocer de una cuenta:
// el id del proveedor de identidad y, opcionalmente, un hash de
// contraseña local para el modo sin proveedor.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
