package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/MiNegocio-api/internal/domain/entity"
)

// CreateSaleRequest entrada para registrar una venta (también usada por el preview).
type CreateSaleRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,min=1"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID          int64           `json:"id"`
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
	CreatedAt   time.Time       `json:"created_at"`
}

// SaleListResponse lista de ventas, más recientes primero.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Total int            `json:"total"`
}

// SalePreviewResponse total calculado antes de registrar; no escribe nada.
type SalePreviewResponse struct {
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
	Available   int             `json:"available"`
	Sufficient  bool            `json:"sufficient"` // false si la cantidad supera el stock
}

// NewSaleResponse mapea la entidad a su salida JSON.
func NewSaleResponse(s *entity.Sale) SaleResponse {
	return SaleResponse{
		ID:          s.ID,
		ProductID:   s.ProductID,
		ProductName: s.ProductName,
		Quantity:    s.Quantity,
		UnitPrice:   s.UnitPrice,
		Total:       s.Total,
		CreatedAt:   s.CreatedAt,
	}
}

// NewSaleList mapea una lista de ventas.
func NewSaleList(list []*entity.Sale) SaleListResponse {
	items := make([]SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, NewSaleResponse(s))
	}
	return SaleListResponse{Items: items, Total: len(items)}
}
