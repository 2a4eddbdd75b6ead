package cashcut_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/MiNegocio-api/internal/domain/cashcut"
	"github.com/jhoicas/MiNegocio-api/internal/domain/entity"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestGrossProfit_MargenPorVenta(t *testing.T) {
	products := []*entity.Product{{ID: 1, Name: "A", PurchaseCost: dec("10")}}
	sales := []*entity.Sale{{ProductID: 1, ProductName: "A", Quantity: 3, UnitPrice: dec("15")}}

	got := cashcut.GrossProfit(products, sales)
	assert.True(t, dec("15").Equal(got), "(15-10)*3 = 15, obtenido %s", got)
}

func TestGrossProfit_VentaHuerfanaNoAporta(t *testing.T) {
	products := []*entity.Product{{ID: 1, Name: "A", PurchaseCost: dec("2.50")}}
	sales := []*entity.Sale{
		{ProductID: 1, ProductName: "A", Quantity: 4, UnitPrice: dec("4")},
		{ProductID: 99, ProductName: "Eliminado", Quantity: 10, UnitPrice: dec("100")},
	}

	got := cashcut.GrossProfit(products, sales)
	assert.True(t, dec("6").Equal(got), "solo cuenta la venta con producto vigente, obtenido %s", got)
}

func TestNetProfit_RestaTodosLosGastos(t *testing.T) {
	yesterday := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	expenses := []*entity.Expense{
		{Amount: dec("3.25"), CreatedAt: yesterday},
		{Amount: dec("1.75"), CreatedAt: yesterday.Add(48 * time.Hour)},
	}
	got := cashcut.NetProfit(dec("20"), expenses)
	assert.True(t, dec("15").Equal(got))
}

func TestTopSellers_AgrupaYOrdena(t *testing.T) {
	sales := []*entity.Sale{
		{ProductName: "A", Quantity: 5},
		{ProductName: "B", Quantity: 9},
		{ProductName: "A", Quantity: 2},
	}
	got := cashcut.TopSellers(sales, 5)
	assert.Equal(t, []cashcut.SellerRank{
		{ProductName: "B", Quantity: 9},
		{ProductName: "A", Quantity: 7},
	}, got)
}

func TestTopSellers_LimitaYRespetaOrdenDeAparicionEnEmpates(t *testing.T) {
	var sales []*entity.Sale
	for _, name := range []string{"C", "A", "B", "D", "E", "F"} {
		sales = append(sales, &entity.Sale{ProductName: name, Quantity: 1})
	}
	sales = append(sales, &entity.Sale{ProductName: "F", Quantity: 3})

	got := cashcut.TopSellers(sales, 5)
	require.Len(t, got, 5)
	assert.Equal(t, "F", got[0].ProductName)
	assert.Equal(t, []string{"C", "A", "B", "D"}, []string{
		got[1].ProductName, got[2].ProductName, got[3].ProductName, got[4].ProductName,
	})
}

func TestTopSellers_SinVentas(t *testing.T) {
	assert.Empty(t, cashcut.TopSellers(nil, 5))
}

func TestLowStock_UmbralInclusivo(t *testing.T) {
	var products []*entity.Product
	for i, q := range []int{0, 5, 6, 3, 10} {
		products = append(products, &entity.Product{ID: int64(i + 1), Quantity: q})
	}
	got := cashcut.LowStock(products, 5)

	quantities := make([]int, 0, len(got))
	for _, p := range got {
		quantities = append(quantities, p.Quantity)
	}
	assert.Equal(t, []int{0, 5, 3}, quantities)
}

func TestDailyTotals_UsanElDiaLocal(t *testing.T) {
	mx := time.FixedZone("CST", -6*60*60)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, mx)

	sales := []*entity.Sale{
		// 10 de marzo 23:30 hora local = 11 de marzo en UTC: cuenta como hoy.
		{Total: dec("10"), CreatedAt: time.Date(2026, 3, 11, 5, 30, 0, 0, time.UTC)},
		// 10 de marzo 03:00 UTC = 9 de marzo local: no cuenta.
		{Total: dec("99"), CreatedAt: time.Date(2026, 3, 10, 3, 0, 0, 0, time.UTC)},
		{Total: dec("5.50"), CreatedAt: now.Add(-time.Hour)},
	}
	got := cashcut.DailySales(sales, now)
	assert.Equal(t, 2, got.Count)
	assert.True(t, dec("15.50").Equal(got.Total), "obtenido %s", got.Total)

	expenses := []*entity.Expense{{Amount: dec("7"), CreatedAt: now}}
	assert.Equal(t, 1, cashcut.DailyExpenses(expenses, now).Count)

	reinv := []*entity.Reinvestment{
		{TotalCost: dec("40"), CreatedAt: now},
		{TotalCost: dec("1"), CreatedAt: now.AddDate(0, 0, -1)},
	}
	r := cashcut.DailyReinvestments(reinv, now)
	assert.Equal(t, 1, r.Count)
	assert.True(t, dec("40").Equal(r.Total))
}

func TestSummarize_ArmaElCorteCompleto(t *testing.T) {
	now := time.Date(2026, 5, 2, 18, 0, 0, 0, time.UTC)
	in := cashcut.Input{
		Products: []*entity.Product{
			{ID: 1, Name: "Café", Quantity: 2, SalePrice: dec("30"), PurchaseCost: dec("18")},
			{ID: 2, Name: "Pan", Quantity: 40, SalePrice: dec("8"), PurchaseCost: dec("5")},
		},
		Sales: []*entity.Sale{
			{ProductID: 1, ProductName: "Café", Quantity: 2, UnitPrice: dec("30"), Total: dec("60"), CreatedAt: now},
			{ProductID: 2, ProductName: "Pan", Quantity: 10, UnitPrice: dec("8"), Total: dec("80"), CreatedAt: now.AddDate(0, 0, -3)},
		},
		Expenses:      []*entity.Expense{{Concept: "Luz", Amount: dec("20"), CreatedAt: now}},
		Reinvestments: []*entity.Reinvestment{{ProductName: "Pan", QuantityPurchased: 10, UnitCost: dec("5"), TotalCost: dec("50"), CreatedAt: now}},
		CashBalance:   dec("570"),
	}

	s := cashcut.Summarize(in, now, cashcut.Options{})

	assert.True(t, dec("54").Equal(s.GrossProfit), "(30-18)*2 + (8-5)*10 = 54, obtenido %s", s.GrossProfit)
	assert.True(t, dec("34").Equal(s.NetProfit))
	assert.True(t, dec("20").Equal(s.TotalExpenses))
	assert.True(t, dec("50").Equal(s.TotalReinvestments))
	assert.True(t, dec("570").Equal(s.CashBalance))
	assert.Equal(t, 1, s.SalesToday.Count)
	assert.True(t, dec("60").Equal(s.SalesToday.Total))
	require.Len(t, s.TopSellers, 2)
	assert.Equal(t, "Pan", s.TopSellers[0].ProductName)
	require.Len(t, s.LowStock, 1)
	assert.Equal(t, "Café", s.LowStock[0].Name)
	assert.Equal(t, now, s.GeneratedAt)
}
