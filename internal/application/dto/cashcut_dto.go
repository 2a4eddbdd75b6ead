package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/MiNegocio-api/internal/domain/cashcut"
)

// DailyTotalDTO suma y número de registros del día.
type DailyTotalDTO struct {
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

// SellerRankDTO unidades vendidas por producto.
type SellerRankDTO struct {
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
}

// CashCutResponse respuesta de GET /api/cash-cut (corte de caja).
type CashCutResponse struct {
	GeneratedAt        time.Time         `json:"generated_at"`
	CashBalance        decimal.Decimal   `json:"cash_balance"`
	GrossProfit        decimal.Decimal   `json:"gross_profit"`
	NetProfit          decimal.Decimal   `json:"net_profit"`
	TotalExpenses      decimal.Decimal   `json:"total_expenses"`
	TotalReinvestments decimal.Decimal   `json:"total_reinvestments"`
	SalesToday         DailyTotalDTO     `json:"sales_today"`
	ExpensesToday      DailyTotalDTO     `json:"expenses_today"`
	ReinvestmentsToday DailyTotalDTO     `json:"reinvestments_today"`
	TopSellers         []SellerRankDTO   `json:"top_sellers"`
	LowStock           []ProductResponse `json:"low_stock"`
}

func newDailyTotal(d cashcut.DailyTotal) DailyTotalDTO {
	return DailyTotalDTO{Total: d.Total, Count: d.Count}
}

// NewCashCutResponse mapea el resumen calculado por el motor de corte.
func NewCashCutResponse(s cashcut.Summary) CashCutResponse {
	top := make([]SellerRankDTO, 0, len(s.TopSellers))
	for _, r := range s.TopSellers {
		top = append(top, SellerRankDTO{ProductName: r.ProductName, Quantity: r.Quantity})
	}
	return CashCutResponse{
		GeneratedAt:        s.GeneratedAt,
		CashBalance:        s.CashBalance,
		GrossProfit:        s.GrossProfit,
		NetProfit:          s.NetProfit,
		TotalExpenses:      s.TotalExpenses,
		TotalReinvestments: s.TotalReinvestments,
		SalesToday:         newDailyTotal(s.SalesToday),
		ExpensesToday:      newDailyTotal(s.ExpensesToday),
		ReinvestmentsToday: newDailyTotal(s.ReinvestmentsToday),
		TopSellers:         top,
		LowStock:           NewProductList(s.LowStock).Items,
	}
}
