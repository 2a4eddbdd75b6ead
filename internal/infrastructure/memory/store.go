// Package memory implementa los puertos de persistencia en memoria del proceso.
// Sirve para tests y para levantar la API sin base de datos (STORE_DRIVER=memory).
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/MiNegocio-api/internal/application/ledger"
	"github.com/jhoicas/MiNegocio-api/internal/domain/entity"
)

var _ ledger.TxRunner = (*Store)(nil)

// Store guarda todas las tablas tras un único mutex.
type Store struct {
	mu     sync.Mutex
	d      *data
	faults map[string]error
	now    func() time.Time
}

type data struct {
	products      map[int64]*entity.Product
	sales         []*entity.Sale
	expenses      map[int64]*entity.Expense
	reinvestments []*entity.Reinvestment
	cash          map[int64]decimal.Decimal
	users         map[string]*entity.User
	seq           int64
}

// Option configura el Store.
type Option func(*Store)

// WithClock fija el reloj usado para created_at.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithCashBalance crea la fila de dinero con el saldo dado.
func WithCashBalance(id int64, amount decimal.Decimal) Option {
	return func(s *Store) { s.d.cash[id] = amount }
}

// NewStore crea un almacén vacío. Sin WithCashBalance existe la fila 1 con saldo 0.
func NewStore(opts ...Option) *Store {
	s := &Store{
		d: &data{
			products: make(map[int64]*entity.Product),
			expenses: make(map[int64]*entity.Expense),
			cash:     make(map[int64]decimal.Decimal),
			users:    make(map[string]*entity.User),
		},
		faults: make(map[string]error),
		now:    time.Now,
	}
	s.d.cash[entity.DefaultCashBalanceID] = decimal.Zero
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FailOn hace que la operación op ("productos.list", "dinero.cas", ...) devuelva err
// hasta que se llame ClearFaults.
func (s *Store) FailOn(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.faults[op] = err
}

// ClearFaults elimina los fallos inyectados.
func (s *Store) ClearFaults() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.faults = make(map[string]error)
}

// SetUserStatus activa o desactiva una cuenta; no hay caso de uso que lo haga desde la API.
func (s *Store) SetUserStatus(userID, status string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.d.users[userID]
	if ok {
		u.Status = status
	}
	return ok
}

// Repositorios fuera de transacción: cada llamada toma el mutex.
func (s *Store) Products() *ProductRepo           { return &ProductRepo{s: s} }
func (s *Store) Sales() *SaleRepo                 { return &SaleRepo{s: s} }
func (s *Store) Expenses() *ExpenseRepo           { return &ExpenseRepo{s: s} }
func (s *Store) Reinvestments() *ReinvestmentRepo { return &ReinvestmentRepo{s: s} }
func (s *Store) Cash() *CashRepo                  { return &CashRepo{s: s} }
func (s *Store) Users() *UserRepo                 { return &UserRepo{s: s} }

// Run ejecuta fn con el mutex tomado. Si fn falla se restaura la copia previa de los datos.
func (s *Store) Run(ctx context.Context, fn func(repos ledger.Repos) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	backup := s.d.clone()
	repos := ledger.Repos{
		Products:      &ProductRepo{s: s, inTx: true},
		Sales:         &SaleRepo{s: s, inTx: true},
		Expenses:      &ExpenseRepo{s: s, inTx: true},
		Reinvestments: &ReinvestmentRepo{s: s, inTx: true},
		Cash:          &CashRepo{s: s, inTx: true},
	}
	if err := fn(repos); err != nil {
		s.d = backup
		return err
	}
	return nil
}

// do ejecuta fn sobre los datos, tomando el mutex salvo que ya lo tenga la transacción.
func (s *Store) do(ctx context.Context, inTx bool, op string, fn func(d *data) error) error {
	if !inTx {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.faults[op]; err != nil {
		return err
	}
	return fn(s.d)
}

func (d *data) nextID() int64 {
	d.seq++
	return d.seq
}

func (d *data) clone() *data {
	c := &data{
		products:      make(map[int64]*entity.Product, len(d.products)),
		sales:         append([]*entity.Sale(nil), d.sales...),
		expenses:      make(map[int64]*entity.Expense, len(d.expenses)),
		reinvestments: append([]*entity.Reinvestment(nil), d.reinvestments...),
		cash:          make(map[int64]decimal.Decimal, len(d.cash)),
		users:         make(map[string]*entity.User, len(d.users)),
		seq:           d.seq,
	}
	// Ventas, gastos y reinversiones son inmutables: basta copiar los punteros.
	for k, v := range d.products {
		p := *v
		c.products[k] = &p
	}
	for k, v := range d.expenses {
		c.expenses[k] = v
	}
	for k, v := range d.cash {
		c.cash[k] = v
	}
	for k, v := range d.users {
		c.users[k] = v
	}
	return c
}

// newestFirst ordena por created_at desc y luego id desc, como las consultas de postgres.
func newestFirst(ti, tj time.Time, idi, idj int64) bool {
	if !ti.Equal(tj) {
		return ti.After(tj)
	}
	return idi > idj
}

func sortProducts(list []*entity.Product) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].Name != list[j].Name {
			return list[i].Name < list[j].Name
		}
		return list[i].ID < list[j].ID
	})
}
