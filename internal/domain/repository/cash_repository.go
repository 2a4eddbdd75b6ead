package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/MiNegocio-api/internal/domain/entity"
)

// CashRepository puerto para la fila singleton de dinero en caja.
type CashRepository interface {
	// Get lee el saldo. ErrNotFound si la fila no existe.
	Get(ctx context.Context, id int64) (*entity.CashBalance, error)
	// GetForUpdate lee el saldo bloqueando la fila (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, id int64) (*entity.CashBalance, error)
	// CompareAndSet escribe amount solo si el saldo actual es expected; si no, ErrConflict.
	CompareAndSet(ctx context.Context, id int64, expected, amount decimal.Decimal) error
}
