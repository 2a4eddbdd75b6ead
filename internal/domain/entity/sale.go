package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale es una venta registrada (tabla ventas). Inmutable una vez creada.
// ProductName y UnitPrice son una copia del producto al momento de vender;
// ProductID es una referencia blanda que puede quedar huérfana si el producto se elimina.
type Sale struct {
	ID          int64
	ProductID   int64
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Total       decimal.Decimal // Quantity * UnitPrice
	CreatedAt   time.Time
}

// NewSale construye la venta copiando nombre y precio del producto.
func NewSale(p *Product, quantity int) *Sale {
	return &Sale{
		ProductID:   p.ID,
		ProductName: p.Name,
		Quantity:    quantity,
		UnitPrice:   p.SalePrice,
		Total:       p.SalePrice.Mul(decimal.NewFromInt(int64(quantity))),
	}
}
