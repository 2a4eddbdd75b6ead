package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/MiNegocio-api/internal/domain/entity"
)

// CreateReinvestmentRequest entrada para registrar una compra de reabastecimiento.
type CreateReinvestmentRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,min=1"`
}

// ReinvestmentResponse salida de una reinversión. ProductID es null en registros antiguos.
type ReinvestmentResponse struct {
	ID                int64           `json:"id"`
	ProductID         *int64          `json:"product_id"`
	ProductName       string          `json:"product_name"`
	QuantityPurchased int             `json:"quantity_purchased"`
	UnitCost          decimal.Decimal `json:"unit_cost"`
	TotalCost         decimal.Decimal `json:"total_cost"`
	CreatedAt         time.Time       `json:"created_at"`
}

// ReinvestmentListResponse lista de reinversiones.
type ReinvestmentListResponse struct {
	Items []ReinvestmentResponse `json:"items"`
	Total int                    `json:"total"`
}

func NewReinvestmentResponse(r *entity.Reinvestment) ReinvestmentResponse {
	return ReinvestmentResponse{
		ID:                r.ID,
		ProductID:         r.ProductID,
		ProductName:       r.ProductName,
		QuantityPurchased: r.QuantityPurchased,
		UnitCost:          r.UnitCost,
		TotalCost:         r.TotalCost,
		CreatedAt:         r.CreatedAt,
	}
}

func NewReinvestmentList(list []*entity.Reinvestment) ReinvestmentListResponse {
	items := make([]ReinvestmentResponse, 0, len(list))
	for _, r := range list {
		items = append(items, NewReinvestmentResponse(r))
	}
	return ReinvestmentListResponse{Items: items, Total: len(items)}
}
