package repository

import (
	"context"

	"github.com/jhoicas/MiNegocio-api/internal/domain/entity"
)

// ReinvestmentRepository puerto de persistencia para reinversiones (inmutables).
type ReinvestmentRepository interface {
	Create(ctx context.Context, r *entity.Reinvestment) error
	// List devuelve todas las reinversiones, más recientes primero.
	List(ctx context.Context) ([]*entity.Reinvestment, error)
}
