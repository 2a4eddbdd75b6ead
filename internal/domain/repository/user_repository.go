package repository

import (
	"context"

	"github.com/jhoicas/MiNegocio-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	// Create devuelve ErrDuplicate si el email ya existe.
	Create(ctx context.Context, user *entity.User) error
	// GetByID y GetByEmail devuelven nil, nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
