// Package dashboard mantiene la fotografía de datos que ven todas las secciones
// del panel y arma las vistas (secciones y corte de caja) a partir de ella.
package dashboard

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/MiNegocio-api/internal/domain/entity"
	"github.com/jhoicas/MiNegocio-api/internal/domain/repository"
	"github.com/jhoicas/MiNegocio-api/pkg/logger"
)

// Snapshot colecciones completas leídas en una sola recarga. No se modifica después de publicarse.
type Snapshot struct {
	Products      []*entity.Product      // nombre ascendente
	Sales         []*entity.Sale         // más recientes primero
	Expenses      []*entity.Expense      // más recientes primero
	Reinvestments []*entity.Reinvestment // más recientes primero
	CashBalance   decimal.Decimal
	LoadedAt      time.Time
}

// Source lo que necesitan los casos de uso: leer la fotografía vigente y pedir una recarga.
type Source interface {
	Current(ctx context.Context) (*Snapshot, error)
	Reload(ctx context.Context) error
}

// Repositories puertos de lectura que consulta el Loader.
type Repositories struct {
	Products      repository.ProductRepository
	Sales         repository.SaleRepository
	Expenses      repository.ExpenseRepository
	Reinvestments repository.ReinvestmentRepository
	Cash          repository.CashRepository
}

var _ Source = (*Loader)(nil)

// Loader dueño de la fotografía. La publica con un único swap atómico, así los lectores
// nunca ven una mezcla de datos de dos recargas distintas.
type Loader struct {
	repos   Repositories
	cashID  int64
	now     func() time.Time
	log     *logger.Logger
	reload  sync.Mutex
	current atomic.Pointer[Snapshot]
}

// NewLoader construye el Loader; now define la zona horaria de LoadedAt.
func NewLoader(repos Repositories, cashID int64, now func() time.Time, log *logger.Logger) *Loader {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Loader{repos: repos, cashID: cashID, now: now, log: log.Component("dashboard.loader")}
}

// Reload lee las cinco colecciones en paralelo. Solo si todas llegan bien se publica la nueva
// fotografía; ante cualquier error se registra, se devuelve y queda visible la anterior.
func (l *Loader) Reload(ctx context.Context) error {
	l.reload.Lock()
	defer l.reload.Unlock()

	type productsResult struct {
		items []*entity.Product
		err   error
	}
	type salesResult struct {
		items []*entity.Sale
		err   error
	}
	type expensesResult struct {
		items []*entity.Expense
		err   error
	}
	type reinvestmentsResult struct {
		items []*entity.Reinvestment
		err   error
	}
	type cashResult struct {
		cash *entity.CashBalance
		err  error
	}

	productsCh := make(chan productsResult, 1)
	salesCh := make(chan salesResult, 1)
	expensesCh := make(chan expensesResult, 1)
	reinvCh := make(chan reinvestmentsResult, 1)
	cashCh := make(chan cashResult, 1)

	go func() {
		items, err := l.repos.Products.List(ctx)
		productsCh <- productsResult{items, err}
	}()
	go func() {
		items, err := l.repos.Sales.List(ctx)
		salesCh <- salesResult{items, err}
	}()
	go func() {
		items, err := l.repos.Expenses.List(ctx)
		expensesCh <- expensesResult{items, err}
	}()
	go func() {
		items, err := l.repos.Reinvestments.List(ctx)
		reinvCh <- reinvestmentsResult{items, err}
	}()
	go func() {
		cash, err := l.repos.Cash.Get(ctx, l.cashID)
		cashCh <- cashResult{cash, err}
	}()

	products := <-productsCh
	sales := <-salesCh
	expenses := <-expensesCh
	reinv := <-reinvCh
	cash := <-cashCh

	var err error
	switch {
	case products.err != nil:
		err = fmt.Errorf("recarga: productos: %w", products.err)
	case sales.err != nil:
		err = fmt.Errorf("recarga: ventas: %w", sales.err)
	case expenses.err != nil:
		err = fmt.Errorf("recarga: gastos: %w", expenses.err)
	case reinv.err != nil:
		err = fmt.Errorf("recarga: reinversiones: %w", reinv.err)
	case cash.err != nil:
		err = fmt.Errorf("recarga: dinero: %w", cash.err)
	}
	if err != nil {
		l.log.Error().Err(err).Msg("no se pudo recargar; se conserva la fotografía anterior")
		return err
	}

	snap := &Snapshot{
		Products:      products.items,
		Sales:         sales.items,
		Expenses:      expenses.items,
		Reinvestments: reinv.items,
		CashBalance:   cash.cash.Amount,
		LoadedAt:      l.now(),
	}
	l.current.Store(snap)
	l.log.Debug().
		Int("productos", len(snap.Products)).
		Int("ventas", len(snap.Sales)).
		Int("gastos", len(snap.Expenses)).
		Int("reinversiones", len(snap.Reinvestments)).
		Msg("fotografía recargada")
	return nil
}

// Current devuelve la fotografía publicada; la primera vez la carga.
func (l *Loader) Current(ctx context.Context) (*Snapshot, error) {
	if snap := l.current.Load(); snap != nil {
		return snap, nil
	}
	if err := l.Reload(ctx); err != nil {
		return nil, err
	}
	return l.current.Load(), nil
}

// Loaded devuelve la fotografía publicada o nil si nunca se cargó.
func (l *Loader) Loaded() *Snapshot {
	return l.current.Load()
}

// ReloadAfterWrite recarga tras una escritura ya confirmada. Un fallo aquí no deshace la
// escritura: se registra y la siguiente recarga pondrá la fotografía al día.
func ReloadAfterWrite(ctx context.Context, src Source, log *logger.Logger, op string) {
	if err := src.Reload(ctx); err != nil && log != nil {
		log.Warn().Err(err).Str("op", op).Msg("escritura confirmada pero la recarga falló")
	}
}
