package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/MiNegocio-api/internal/domain/entity"
)

// CreateExpenseRequest entrada para registrar un gasto.
type CreateExpenseRequest struct {
	Concept string           `json:"concept" validate:"required,min=1,max=200"`
	Amount  *decimal.Decimal `json:"amount" validate:"required"`
}

// ExpenseResponse salida de un gasto.
type ExpenseResponse struct {
	ID        int64           `json:"id"`
	Concept   string          `json:"concept"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}

// ExpenseListResponse lista de gastos.
type ExpenseListResponse struct {
	Items []ExpenseResponse `json:"items"`
	Total int               `json:"total"`
}

func NewExpenseResponse(e *entity.Expense) ExpenseResponse {
	return ExpenseResponse{ID: e.ID, Concept: e.Concept, Amount: e.Amount, CreatedAt: e.CreatedAt}
}

func NewExpenseList(list []*entity.Expense) ExpenseListResponse {
	items := make([]ExpenseResponse, 0, len(list))
	for _, e := range list {
		items = append(items, NewExpenseResponse(e))
	}
	return ExpenseListResponse{Items: items, Total: len(items)}
}
