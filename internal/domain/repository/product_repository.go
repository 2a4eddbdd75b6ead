package repository

import (
	"context"

	"github.com/jhoicas/MiNegocio-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	// Create inserta el producto y asigna product.ID.
	Create(ctx context.Context, product *entity.Product) error
	// GetByID devuelve nil, nil si no existe.
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	// GetForUpdate bloquea la fila hasta el fin de la transacción (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, id int64) (*entity.Product, error)
	// Update reemplaza los cuatro campos editables. ErrNotFound si no existe.
	Update(ctx context.Context, product *entity.Product) error
	// SetQuantity cambia el stock solo si sigue valiendo expected; si no, ErrConflict.
	SetQuantity(ctx context.Context, id int64, expected, quantity int) error
	// List devuelve todos los productos ordenados por nombre ascendente.
	List(ctx context.Context) ([]*entity.Product, error)
	// Delete elimina sin cascada. ErrNotFound si no existe.
	Delete(ctx context.Context, id int64) error
}
