package dto

import "github.com/shopspring/decimal"

// CashResponse dinero en caja.
type CashResponse struct {
	Amount decimal.Decimal `json:"amount"`
}

// CashAdjustmentRequest ajuste manual de caja; Amount con signo (positivo ingresa, negativo retira).
type CashAdjustmentRequest struct {
	Amount  *decimal.Decimal `json:"amount" validate:"required"`
	Concept string           `json:"concept" validate:"required,min=1,max=200"`
}

// CashAdjustmentResponse saldo antes y después del ajuste.
type CashAdjustmentResponse struct {
	Concept  string          `json:"concept"`
	Previous decimal.Decimal `json:"previous"`
	Amount   decimal.Decimal `json:"amount"`
	Balance  decimal.Decimal `json:"balance"`
}
