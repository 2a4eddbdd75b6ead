// Package excel genera el corte de caja como libro de Excel con excelize.
package excel

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/MiNegocio-api/internal/application/report"
)

// Nombres de las hojas del libro.
const (
	SheetSummary       = "Resumen"
	SheetSales         = "Ventas"
	SheetExpenses      = "Gastos"
	SheetReinvestments = "Reinversiones"
	SheetLowStock      = "Stock bajo"
)

var _ report.WorkbookGenerator = (*WorkbookGenerator)(nil)

// WorkbookGenerator implementa report.WorkbookGenerator.
type WorkbookGenerator struct{}

func NewWorkbookGenerator() *WorkbookGenerator { return &WorkbookGenerator{} }

// GenerateCashCutWorkbook una hoja de resumen y una por cada detalle. Los montos van como
// número (2 decimales) para que se puedan sumar en Excel.
func (g *WorkbookGenerator) GenerateCashCutWorkbook(_ context.Context, data report.CashCutData) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}
	for _, name := range []string{SheetSales, SheetExpenses, SheetReinvestments, SheetLowStock} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("xlsx: crear hoja %s: %w", name, err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}

	s := data.Summary
	loc := s.GeneratedAt.Location()
	summary := [][]any{
		{"Corte de caja", data.BusinessName},
		{"Fecha", report.DayLabel(s.GeneratedAt)},
		{},
		{"Dinero en caja", money(s.CashBalance)},
		{"Ganancia bruta", money(s.GrossProfit)},
		{"Gastos totales", money(s.TotalExpenses)},
		{"Ganancia neta", money(s.NetProfit)},
		{"Reinversión total", money(s.TotalReinvestments)},
		{},
		{"Hoy", "Registros", "Total"},
		{"Ventas", s.SalesToday.Count, money(s.SalesToday.Total)},
		{"Gastos", s.ExpensesToday.Count, money(s.ExpensesToday.Total)},
		{"Reinversiones", s.ReinvestmentsToday.Count, money(s.ReinvestmentsToday.Total)},
		{},
		{"Más vendidos", "Unidades"},
	}
	for _, r := range s.TopSellers {
		summary = append(summary, []any{r.ProductName, r.Quantity})
	}
	if err := writeRows(f, SheetSummary, summary); err != nil {
		return nil, err
	}
	_ = f.SetCellStyle(SheetSummary, "A1", "A1", bold)
	_ = f.SetColWidth(SheetSummary, "A", "A", 24)

	sales := [][]any{{"Hora", "Producto", "Cantidad", "Precio unitario", "Total"}}
	for _, v := range data.Sales {
		sales = append(sales, []any{v.CreatedAt.In(loc).Format("15:04"), v.ProductName, v.Quantity, money(v.UnitPrice), money(v.Total)})
	}
	expenses := [][]any{{"Hora", "Concepto", "Monto"}}
	for _, e := range data.Expenses {
		expenses = append(expenses, []any{e.CreatedAt.In(loc).Format("15:04"), e.Concept, money(e.Amount)})
	}
	reinv := [][]any{{"Hora", "Producto", "Cantidad", "Costo unitario", "Costo total"}}
	for _, r := range data.Reinvestments {
		reinv = append(reinv, []any{r.CreatedAt.In(loc).Format("15:04"), r.ProductName, r.QuantityPurchased, money(r.UnitCost), money(r.TotalCost)})
	}
	lowStock := [][]any{{"Producto", "Cantidad"}}
	for _, p := range s.LowStock {
		lowStock = append(lowStock, []any{p.Name, p.Quantity})
	}

	for sheet, rows := range map[string][][]any{
		SheetSales:         sales,
		SheetExpenses:      expenses,
		SheetReinvestments: reinv,
		SheetLowStock:      lowStock,
	} {
		if err := writeRows(f, sheet, rows); err != nil {
			return nil, err
		}
		_ = f.SetCellStyle(sheet, "A1", "E1", bold)
		_ = f.SetColWidth(sheet, "B", "B", 28)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, r := range rows {
		if len(r) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		values := r
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("xlsx: hoja %s fila %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
