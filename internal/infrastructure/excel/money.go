package excel

import "github.com/shopspring/decimal"

func money(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}
