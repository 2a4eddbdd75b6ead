// Package ledger contiene las operaciones que mueven dinero de la caja: ventas, gastos,
// reinversiones y ajustes manuales. Cada una corre en una sola transacción.
package ledger

import (
	"context"

	"github.com/jhoicas/MiNegocio-api/internal/domain/repository"
)

// Repos repositorios atados a una misma transacción.
type Repos struct {
	Products      repository.ProductRepository
	Sales         repository.SaleRepository
	Expenses      repository.ExpenseRepository
	Reinvestments repository.ReinvestmentRepository
	Cash          repository.CashRepository
}

// TxRunner ejecuta fn dentro de una transacción: si fn devuelve error no queda escrito nada.
// Orden de bloqueo: primero el producto, luego la caja.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos Repos) error) error
}
