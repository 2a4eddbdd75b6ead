package repository

import (
	"context"

	"github.com/jhoicas/MiNegocio-api/internal/domain/entity"
)

// SaleRepository puerto de persistencia para ventas. No hay update ni delete: las ventas son inmutables.
type SaleRepository interface {
	// Create inserta la venta y asigna ID y CreatedAt.
	Create(ctx context.Context, sale *entity.Sale) error
	// List devuelve todas las ventas, más recientes primero.
	List(ctx context.Context) ([]*entity.Sale, error)
}
