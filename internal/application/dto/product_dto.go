package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/MiNegocio-api/internal/domain/entity"
)

// ProductRequest entrada para crear o editar un producto. Los cuatro campos son obligatorios;
// se usan punteros para distinguir "no enviado" de cero.
type ProductRequest struct {
	Name         string           `json:"name" validate:"required,min=1,max=200"`
	Quantity     *int             `json:"quantity" validate:"required,min=0"`
	SalePrice    *decimal.Decimal `json:"sale_price" validate:"required"`
	PurchaseCost *decimal.Decimal `json:"purchase_cost" validate:"required"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Quantity     int             `json:"quantity"`
	SalePrice    decimal.Decimal `json:"sale_price"`
	PurchaseCost decimal.Decimal `json:"purchase_cost"`
}

// ProductListResponse lista de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

// NewProductResponse mapea la entidad a su salida JSON.
func NewProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Quantity:     p.Quantity,
		SalePrice:    p.SalePrice,
		PurchaseCost: p.PurchaseCost,
	}
}

// NewProductList mapea una lista de productos.
func NewProductList(list []*entity.Product) ProductListResponse {
	items := make([]ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, NewProductResponse(p))
	}
	return ProductListResponse{Items: items, Total: len(items)}
}
