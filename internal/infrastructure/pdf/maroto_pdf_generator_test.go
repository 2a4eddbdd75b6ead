package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/MiNegocio-api/internal/application/report"
	"github.com/jhoicas/MiNegocio-api/internal/domain/cashcut"
	"github.com/jhoicas/MiNegocio-api/internal/domain/entity"
	"github.com/jhoicas/MiNegocio-api/internal/infrastructure/pdf"
)

func TestGenerateCashCutPDF(t *testing.T) {
	now := time.Date(2026, 5, 2, 18, 0, 0, 0, time.UTC)
	data := report.CashCutData{
		BusinessName: "Abarrotes Lupita",
		Summary: cashcut.Summary{
			GeneratedAt: now,
			CashBalance: decimal.NewFromInt(570),
			GrossProfit: decimal.NewFromInt(54),
			NetProfit:   decimal.NewFromInt(34),
			TopSellers:  []cashcut.SellerRank{{ProductName: "Pan", Quantity: 10}},
			LowStock:    []*entity.Product{{ID: 1, Name: "Café", Quantity: 2}},
		},
		Sales: []*entity.Sale{{ProductName: "Café", Quantity: 2, UnitPrice: decimal.NewFromInt(30), Total: decimal.NewFromInt(60), CreatedAt: now}},
	}

	out, err := pdf.NewMarotoPDFGenerator().GenerateCashCutPDF(context.Background(), data)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "debe ser un PDF")
}

func TestGenerateCashCutPDF_SinMovimientos(t *testing.T) {
	data := report.CashCutData{Summary: cashcut.Summary{GeneratedAt: time.Now()}}

	out, err := pdf.NewMarotoPDFGenerator().GenerateCashCutPDF(context.Background(), data)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
