package entity

import "github.com/shopspring/decimal"

// Product representa un producto del inventario (tabla productos).
// Quantity nunca baja de 0: las ventas validan stock antes de escribir.
type Product struct {
	ID           int64
	Name         string
	Quantity     int
	SalePrice    decimal.Decimal // precio de venta
	PurchaseCost decimal.Decimal // precio de compra
}
