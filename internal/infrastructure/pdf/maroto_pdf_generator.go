// Package pdf genera el corte de caja en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del negocio   │  CORTE DE CAJA + fecha       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Dinero en caja / Ganancia bruta / Ganancia neta    │
//	│  HOY: Ventas / Gastos / Reinversiones                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Más vendidos                                         │
//	│  TABLA: Stock bajo                                           │
//	│  TABLA: Ventas del día                                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/MiNegocio-api/internal/application/report"
	"github.com/jhoicas/MiNegocio-api/internal/domain/cashcut"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 22, Green: 101, Blue: 52}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDanger  = &props.Color{Red: 185, Green: 28, Blue: 28}
)

var _ report.PDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa report.PDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateCashCutPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateCashCutPDF(_ context.Context, data report.CashCutData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Corte de caja", true).
		WithAuthor(data.BusinessName, true).
		Build()

	m := maroto.New(cfg)
	s := data.Summary

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(sectionTitle("RESUMEN"))
	m.AddRows(
		kvRow("Dinero en caja", report.Money(s.CashBalance), true),
		kvRow("Ganancia bruta", report.Money(s.GrossProfit), false),
		kvRow("Gastos totales", report.Money(s.TotalExpenses), false),
		kvRow("Ganancia neta", report.Money(s.NetProfit), true),
		kvRow("Reinversión total", report.Money(s.TotalReinvestments), false),
	)
	m.AddRows(line.NewRow(3))
	m.AddRows(sectionTitle("HOY"))
	m.AddRows(
		dailyRow("Ventas", s.SalesToday),
		dailyRow("Gastos", s.ExpensesToday),
		dailyRow("Reinversiones", s.ReinvestmentsToday),
	)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(sectionTitle("MÁS VENDIDOS"))
	if len(s.TopSellers) == 0 {
		m.AddRows(emptyRow("Sin ventas registradas"))
	}
	for i, r := range s.TopSellers {
		m.AddRows(tableRow(
			cell{fmt.Sprintf("%d.", i+1), 1, align.Left},
			cell{r.ProductName, 8, align.Left},
			cell{report.Units(r.Quantity) + " u.", 3, align.Right},
		))
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(sectionTitle("STOCK BAJO"))
	if len(s.LowStock) == 0 {
		m.AddRows(emptyRow("Todo el inventario está por encima del mínimo"))
	}
	for _, p := range s.LowStock {
		m.AddRows(row.New(6).Add(
			col.New(9).Add(text.New(p.Name, props.Text{Size: 8, Top: 1})),
			col.New(3).Add(text.New(report.Units(p.Quantity)+" u.", props.Text{
				Size: 8, Top: 1, Align: align.Right, Color: colorDanger, Style: fontstyle.Bold,
			})),
		))
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(sectionTitle("VENTAS DEL DÍA"))
	m.AddRows(tableHeaderRow())
	if len(data.Sales) == 0 {
		m.AddRows(emptyRow("Sin ventas hoy"))
	}
	for _, sale := range data.Sales {
		m.AddRows(tableRow(
			cell{sale.CreatedAt.In(s.GeneratedAt.Location()).Format("15:04"), 2, align.Left},
			cell{sale.ProductName, 5, align.Left},
			cell{report.Units(sale.Quantity), 1, align.Center},
			cell{report.Money(sale.UnitPrice), 2, align.Right},
			cell{report.Money(sale.Total), 2, align.Right},
		))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(data report.CashCutData) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(nonEmpty(data.BusinessName, "Mi Negocio"), props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(5).Add(
			text.New("CORTE DE CAJA", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(report.DayLabel(data.Day()), props.Text{
				Size: 8, Align: align.Right, Top: 7, Color: colorGray,
			}),
			text.New("Generado "+data.Day().Format("15:04"), props.Text{
				Size: 7, Align: align.Right, Top: 12, Color: colorGray,
			}),
		),
	)
}

func sectionTitle(label string) core.Row {
	return row.New(7).Add(col.New(12).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
	})))
}

func kvRow(label, value string, bold bool) core.Row {
	style := fontstyle.Normal
	if bold {
		style = fontstyle.Bold
	}
	return row.New(6).Add(
		col.New(6).Add(text.New(label, props.Text{Size: 9, Top: 1, Style: style})),
		col.New(6).Add(text.New(value, props.Text{Size: 9, Top: 1, Align: align.Right, Style: style})),
	)
}

func dailyRow(label string, d cashcut.DailyTotal) core.Row {
	return row.New(6).Add(
		col.New(6).Add(text.New(label, props.Text{Size: 9, Top: 1})),
		col.New(3).Add(text.New(fmt.Sprintf("%d registro(s)", d.Count), props.Text{
			Size: 8, Top: 1, Align: align.Right, Color: colorGray,
		})),
		col.New(3).Add(text.New(report.Money(d.Total), props.Text{Size: 9, Top: 1, Align: align.Right})),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorGray, Top: 1,
		}))
	}
	return row.New(6).Add(
		h("Hora", 2, align.Left),
		h("Producto", 5, align.Left),
		h("Cant.", 1, align.Center),
		h("P. unit.", 2, align.Right),
		h("Total", 2, align.Right),
	)
}

type cell struct {
	value string
	size  int
	align align.Type
}

func tableRow(cells ...cell) core.Row {
	cols := make([]core.Col, 0, len(cells))
	for _, c := range cells {
		cols = append(cols, col.New(c.size).Add(text.New(c.value, props.Text{Size: 8, Top: 1, Align: c.align})))
	}
	return row.New(6).Add(cols...)
}

func emptyRow(msg string) core.Row {
	return row.New(6).Add(col.New(12).Add(text.New(msg, props.Text{Size: 8, Top: 1, Color: colorGray})))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
