package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/MiNegocio-api/internal/application/dto"
	"github.com/jhoicas/MiNegocio-api/internal/domain"
	"github.com/jhoicas/MiNegocio-api/internal/domain/cashcut"
	"github.com/jhoicas/MiNegocio-api/internal/domain/entity"
)

// ViewOptions parámetros de negocio de las vistas.
type ViewOptions struct {
	LowStockThreshold int
	TopSellers        int
	RecentSales       int // ventas listadas en la sección de ventas
}

// ViewUseCase arma las secciones del panel y el corte de caja a partir de la fotografía.
type ViewUseCase struct {
	source Source
	opts   ViewOptions
	now    func() time.Time
}

// NewViewUseCase construye el caso de uso. now fija el "hoy" (con la zona horaria del negocio).
func NewViewUseCase(source Source, opts ViewOptions, now func() time.Time) *ViewUseCase {
	if opts.RecentSales <= 0 {
		opts.RecentSales = 20
	}
	if now == nil {
		now = time.Now
	}
	return &ViewUseCase{source: source, opts: opts, now: now}
}

// Summary corte de caja calculado sobre la fotografía vigente.
func (uc *ViewUseCase) Summary(ctx context.Context) (cashcut.Summary, *Snapshot, error) {
	snap, err := uc.source.Current(ctx)
	if err != nil {
		return cashcut.Summary{}, nil, err
	}
	return uc.summarize(snap), snap, nil
}

// CashCut respuesta JSON del corte de caja.
func (uc *ViewUseCase) CashCut(ctx context.Context) (*dto.CashCutResponse, error) {
	s, _, err := uc.Summary(ctx)
	if err != nil {
		return nil, err
	}
	out := dto.NewCashCutResponse(s)
	return &out, nil
}

func (uc *ViewUseCase) summarize(snap *Snapshot) cashcut.Summary {
	return cashcut.Summarize(cashcut.Input{
		Products:      snap.Products,
		Sales:         snap.Sales,
		Expenses:      snap.Expenses,
		Reinvestments: snap.Reinvestments,
		CashBalance:   snap.CashBalance,
	}, uc.now(), cashcut.Options{
		LowStockThreshold: uc.opts.LowStockThreshold,
		TopSellers:        uc.opts.TopSellers,
	})
}

// Section devuelve los datos que muestra la sección indicada.
func (uc *ViewUseCase) Section(ctx context.Context, name string) (*dto.SectionResponse, error) {
	section, ok := entity.ParseSection(name)
	if !ok {
		return nil, fmt.Errorf("%w: sección desconocida %q", domain.ErrInvalidInput, name)
	}
	snap, err := uc.source.Current(ctx)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	out := &dto.SectionResponse{Section: string(section), LoadedAt: snap.LoadedAt}
	balance := snap.CashBalance

	switch section {
	case entity.SectionInventory:
		products := dto.NewProductList(snap.Products)
		out.Products = &products
	case entity.SectionSales:
		products := dto.NewProductList(Sellable(snap.Products))
		recent := snap.Sales
		if len(recent) > uc.opts.RecentSales {
			recent = recent[:uc.opts.RecentSales]
		}
		sales := dto.NewSaleList(recent)
		today := dailyDTO(cashcut.DailySales(snap.Sales, now))
		out.Products, out.Sales, out.SalesToday = &products, &sales, &today
	case entity.SectionExpenses:
		expenses := dto.NewExpenseList(snap.Expenses)
		today := dailyDTO(cashcut.DailyExpenses(snap.Expenses, now))
		out.Expenses, out.ExpensesToday, out.CashBalance = &expenses, &today, &balance
	case entity.SectionReinvestment:
		products := dto.NewProductList(snap.Products)
		reinv := dto.NewReinvestmentList(snap.Reinvestments)
		today := dailyDTO(cashcut.DailyReinvestments(snap.Reinvestments, now))
		out.Products, out.Reinvestments, out.ReinvestmentsToday, out.CashBalance = &products, &reinv, &today, &balance
	case entity.SectionCashCut:
		cut := dto.NewCashCutResponse(uc.summarize(snap))
		out.CashCut = &cut
	}
	return out, nil
}

// Reload fuerza una recarga completa y resume lo cargado.
func (uc *ViewUseCase) Reload(ctx context.Context) (*dto.ReloadResponse, error) {
	if err := uc.source.Reload(ctx); err != nil {
		return nil, err
	}
	snap, err := uc.source.Current(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.ReloadResponse{
		LoadedAt:      snap.LoadedAt,
		Products:      len(snap.Products),
		Sales:         len(snap.Sales),
		Expenses:      len(snap.Expenses),
		Reinvestments: len(snap.Reinvestments),
	}, nil
}

func dailyDTO(d cashcut.DailyTotal) dto.DailyTotalDTO {
	return dto.DailyTotalDTO{Total: d.Total, Count: d.Count}
}
