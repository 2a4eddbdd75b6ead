package dto

import (
	"time"

	"github.com/jhoicas/MiNegocio-api/internal/domain/entity"
)

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

// SessionResponse usuario de la sesión actual.
type SessionResponse struct {
	SessionID string       `json:"session_id"`
	User      UserResponse `json:"user"`
}

func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email, Name: u.Name, Status: u.Status, CreatedAt: u.CreatedAt}
}
