package entity

import "github.com/shopspring/decimal"

// DefaultCashBalanceID es el id fijo de la única fila de la tabla dinero.
const DefaultCashBalanceID int64 = 1

// CashBalance es el dinero en caja (fila singleton de la tabla dinero).
type CashBalance struct {
	ID     int64
	Amount decimal.Decimal
}

// Covers indica si la caja alcanza para pagar amount.
func (c CashBalance) Covers(amount decimal.Decimal) bool {
	return amount.LessThanOrEqual(c.Amount)
}

// MoneyScale decimales de las columnas de dinero (NUMERIC(12,2)).
const MoneyScale int32 = 2

// IsMoney indica si amount cabe en una columna de dinero sin redondeo.
func IsMoney(amount decimal.Decimal) bool {
	return amount.Equal(amount.Round(MoneyScale))
}
