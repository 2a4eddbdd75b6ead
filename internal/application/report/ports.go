// Package report exporta el corte de caja a PDF y a Excel.
package report

import (
	"context"
	"time"

	"github.com/jhoicas/MiNegocio-api/internal/domain/cashcut"
	"github.com/jhoicas/MiNegocio-api/internal/domain/entity"
)

// CashCutData lo que necesita un generador: el resumen y el detalle del día.
type CashCutData struct {
	BusinessName  string
	Summary       cashcut.Summary
	Sales         []*entity.Sale         // ventas de hoy
	Expenses      []*entity.Expense      // gastos de hoy
	Reinvestments []*entity.Reinvestment // reinversiones de hoy
}

// Day fecha del corte en la zona horaria del negocio.
func (d CashCutData) Day() time.Time { return d.Summary.GeneratedAt }

// PDFGenerator genera el corte en PDF (implementado en infrastructure/pdf).
type PDFGenerator interface {
	GenerateCashCutPDF(ctx context.Context, data CashCutData) ([]byte, error)
}

// WorkbookGenerator genera el corte como libro de Excel (implementado en infrastructure/excel).
type WorkbookGenerator interface {
	GenerateCashCutWorkbook(ctx context.Context, data CashCutData) ([]byte, error)
}
