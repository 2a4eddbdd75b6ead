package repository

import (
	"context"

	"github.com/jhoicas/MiNegocio-api/internal/domain/entity"
)

// ExpenseRepository puerto de persistencia para gastos.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.Expense) error
	// GetByID devuelve nil, nil si no existe.
	GetByID(ctx context.Context, id int64) (*entity.Expense, error)
	// Delete devuelve ErrNotFound si no existe.
	Delete(ctx context.Context, id int64) error
	// List devuelve todos los gastos, más recientes primero.
	List(ctx context.Context) ([]*entity.Expense, error)
}
