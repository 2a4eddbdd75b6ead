package entity

import "time"

// Estados válidos de User.
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// User es una cuenta que puede iniciar sesión en el panel (tabla usuarios).
// No hay registro público: las cuentas se crean con cmd/create_user.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
