package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense es un gasto pagado con dinero de la caja (tabla gastos).
// Eliminarlo devuelve Amount a la caja.
type Expense struct {
	ID        int64
	Concept   string
	Amount    decimal.Decimal
	CreatedAt time.Time
}
