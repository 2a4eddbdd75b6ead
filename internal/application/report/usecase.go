package report

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/MiNegocio-api/internal/application/dashboard"
	"github.com/jhoicas/MiNegocio-api/internal/domain/cashcut"
	"github.com/jhoicas/MiNegocio-api/internal/domain/entity"
)

// SummarySource calcula el corte sobre la fotografía vigente (dashboard.ViewUseCase).
type SummarySource interface {
	Summary(ctx context.Context) (cashcut.Summary, *dashboard.Snapshot, error)
}

// Report archivo listo para descargar.
type Report struct {
	Filename    string
	ContentType string
	Body        []byte
}

const (
	ContentTypePDF  = "application/pdf"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ReportUseCase arma los datos del corte una vez y los pasa al generador pedido.
type ReportUseCase struct {
	source       SummarySource
	pdf          PDFGenerator
	workbook     WorkbookGenerator
	businessName string
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(source SummarySource, pdf PDFGenerator, workbook WorkbookGenerator, businessName string) *ReportUseCase {
	return &ReportUseCase{source: source, pdf: pdf, workbook: workbook, businessName: businessName}
}

// CashCutPDF corte de caja en PDF.
func (uc *ReportUseCase) CashCutPDF(ctx context.Context) (*Report, error) {
	data, err := uc.data(ctx)
	if err != nil {
		return nil, err
	}
	body, err := uc.pdf.GenerateCashCutPDF(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("corte pdf: %w", err)
	}
	return &Report{Filename: Filename(data.Day(), "pdf"), ContentType: ContentTypePDF, Body: body}, nil
}

// CashCutWorkbook corte de caja en Excel.
func (uc *ReportUseCase) CashCutWorkbook(ctx context.Context) (*Report, error) {
	data, err := uc.data(ctx)
	if err != nil {
		return nil, err
	}
	body, err := uc.workbook.GenerateCashCutWorkbook(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("corte xlsx: %w", err)
	}
	return &Report{Filename: Filename(data.Day(), "xlsx"), ContentType: ContentTypeXLSX, Body: body}, nil
}

func (uc *ReportUseCase) data(ctx context.Context) (CashCutData, error) {
	summary, snap, err := uc.source.Summary(ctx)
	if err != nil {
		return CashCutData{}, err
	}
	now := summary.GeneratedAt
	data := CashCutData{
		BusinessName:  uc.businessName,
		Summary:       summary,
		Sales:         make([]*entity.Sale, 0),
		Expenses:      make([]*entity.Expense, 0),
		Reinvestments: make([]*entity.Reinvestment, 0),
	}
	for _, s := range snap.Sales {
		if cashcut.SameDay(s.CreatedAt, now) {
			data.Sales = append(data.Sales, s)
		}
	}
	for _, e := range snap.Expenses {
		if cashcut.SameDay(e.CreatedAt, now) {
			data.Expenses = append(data.Expenses, e)
		}
	}
	for _, r := range snap.Reinvestments {
		if cashcut.SameDay(r.CreatedAt, now) {
			data.Reinvestments = append(data.Reinvestments, r)
		}
	}
	return data, nil
}

// Filename "corte-de-caja-2026-05-02.pdf".
func Filename(day time.Time, ext string) string {
	return fmt.Sprintf("corte-de-caja-%s.%s", day.Format("2006-01-02"), ext)
}

// DayLabel fecha larga en español: "2 de mayo de 2026".
func DayLabel(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), months[t.Month()-1], t.Year())
}
