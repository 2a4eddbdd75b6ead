package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Reinvestment es una compra de reabastecimiento (tabla reinversiones): suma stock y resta caja.
// ProductID es opcional y solo informativo; nombre y costo son copias históricas.
type Reinvestment struct {
	ID                int64
	ProductID         *int64
	ProductName       string
	QuantityPurchased int
	UnitCost          decimal.Decimal
	TotalCost         decimal.Decimal // QuantityPurchased * UnitCost
	CreatedAt         time.Time
}

// NewReinvestment construye la reinversión copiando nombre y costo de compra del producto.
func NewReinvestment(p *Product, quantity int) *Reinvestment {
	id := p.ID
	return &Reinvestment{
		ProductID:         &id,
		ProductName:       p.Name,
		QuantityPurchased: quantity,
		UnitCost:          p.PurchaseCost,
		TotalCost:         p.PurchaseCost.Mul(decimal.NewFromInt(int64(quantity))),
	}
}
