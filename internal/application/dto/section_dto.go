package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SectionResponse datos de una sección del panel. Solo se llenan los campos que la sección muestra.
type SectionResponse struct {
	Section            string                    `json:"section"`
	LoadedAt           time.Time                 `json:"loaded_at"`
	Products           *ProductListResponse      `json:"products,omitempty"`
	Sales              *SaleListResponse         `json:"sales,omitempty"`
	Expenses           *ExpenseListResponse      `json:"expenses,omitempty"`
	Reinvestments      *ReinvestmentListResponse `json:"reinvestments,omitempty"`
	SalesToday         *DailyTotalDTO            `json:"sales_today,omitempty"`
	ExpensesToday      *DailyTotalDTO            `json:"expenses_today,omitempty"`
	ReinvestmentsToday *DailyTotalDTO            `json:"reinvestments_today,omitempty"`
	CashBalance        *decimal.Decimal          `json:"cash_balance,omitempty"`
	CashCut            *CashCutResponse          `json:"cash_cut,omitempty"`
}

// ReloadResponse resultado de POST /api/dashboard/reload.
type ReloadResponse struct {
	LoadedAt      time.Time `json:"loaded_at"`
	Products      int       `json:"products"`
	Sales         int       `json:"sales"`
	Expenses      int       `json:"expenses"`
	Reinvestments int       `json:"reinvestments"`
}
