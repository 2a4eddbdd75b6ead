package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/MiNegocio-api/internal/domain"
	"github.com/jhoicas/MiNegocio-api/internal/domain/entity"
	"github.com/jhoicas/MiNegocio-api/internal/domain/repository"
)

var (
	_ repository.ProductRepository      = (*ProductRepo)(nil)
	_ repository.SaleRepository         = (*SaleRepo)(nil)
	_ repository.ExpenseRepository      = (*ExpenseRepo)(nil)
	_ repository.ReinvestmentRepository = (*ReinvestmentRepo)(nil)
	_ repository.CashRepository         = (*CashRepo)(nil)
	_ repository.UserRepository         = (*UserRepo)(nil)
)

// ProductRepo tabla productos en memoria.
type ProductRepo struct {
	s    *Store
	inTx bool
}

func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	return r.s.do(ctx, r.inTx, "productos.create", func(d *data) error {
		p.ID = d.nextID()
		cp := *p
		d.products[p.ID] = &cp
		return nil
	})
}

func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	var out *entity.Product
	err := r.s.do(ctx, r.inTx, "productos.get", func(d *data) error {
		if p, ok := d.products[id]; ok {
			cp := *p
			out = &cp
		}
		return nil
	})
	return out, err
}

// GetForUpdate en memoria el bloqueo ya lo da el mutex de la transacción.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	return r.s.do(ctx, r.inTx, "productos.update", func(d *data) error {
		if _, ok := d.products[p.ID]; !ok {
			return domain.ErrNotFound
		}
		cp := *p
		d.products[p.ID] = &cp
		return nil
	})
}

func (r *ProductRepo) SetQuantity(ctx context.Context, id int64, expected, quantity int) error {
	return r.s.do(ctx, r.inTx, "productos.cas", func(d *data) error {
		p, ok := d.products[id]
		if !ok || p.Quantity != expected {
			return domain.ErrConflict
		}
		p.Quantity = quantity
		return nil
	})
}

func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	list := make([]*entity.Product, 0)
	err := r.s.do(ctx, r.inTx, "productos.list", func(d *data) error {
		for _, p := range d.products {
			cp := *p
			list = append(list, &cp)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sortProducts(list)
	return list, nil
}

func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	return r.s.do(ctx, r.inTx, "productos.delete", func(d *data) error {
		if _, ok := d.products[id]; !ok {
			return domain.ErrNotFound
		}
		delete(d.products, id)
		return nil
	})
}

// SaleRepo tabla ventas en memoria.
type SaleRepo struct {
	s    *Store
	inTx bool
}

func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	return r.s.do(ctx, r.inTx, "ventas.create", func(d *data) error {
		sale.ID = d.nextID()
		sale.CreatedAt = r.s.now()
		cp := *sale
		d.sales = append(d.sales, &cp)
		return nil
	})
}

func (r *SaleRepo) List(ctx context.Context) ([]*entity.Sale, error) {
	var list []*entity.Sale
	err := r.s.do(ctx, r.inTx, "ventas.list", func(d *data) error {
		list = make([]*entity.Sale, 0, len(d.sales))
		for _, s := range d.sales {
			cp := *s
			list = append(list, &cp)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool {
		return newestFirst(list[i].CreatedAt, list[j].CreatedAt, list[i].ID, list[j].ID)
	})
	return list, nil
}

// ExpenseRepo tabla gastos en memoria.
type ExpenseRepo struct {
	s    *Store
	inTx bool
}

func (r *ExpenseRepo) Create(ctx context.Context, e *entity.Expense) error {
	return r.s.do(ctx, r.inTx, "gastos.create", func(d *data) error {
		e.ID = d.nextID()
		e.CreatedAt = r.s.now()
		cp := *e
		d.expenses[e.ID] = &cp
		return nil
	})
}

func (r *ExpenseRepo) GetByID(ctx context.Context, id int64) (*entity.Expense, error) {
	var out *entity.Expense
	err := r.s.do(ctx, r.inTx, "gastos.get", func(d *data) error {
		if e, ok := d.expenses[id]; ok {
			cp := *e
			out = &cp
		}
		return nil
	})
	return out, err
}

func (r *ExpenseRepo) Delete(ctx context.Context, id int64) error {
	return r.s.do(ctx, r.inTx, "gastos.delete", func(d *data) error {
		if _, ok := d.expenses[id]; !ok {
			return domain.ErrNotFound
		}
		delete(d.expenses, id)
		return nil
	})
}

func (r *ExpenseRepo) List(ctx context.Context) ([]*entity.Expense, error) {
	list := make([]*entity.Expense, 0)
	err := r.s.do(ctx, r.inTx, "gastos.list", func(d *data) error {
		for _, e := range d.expenses {
			cp := *e
			list = append(list, &cp)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(list, func(i, j int) bool {
		return newestFirst(list[i].CreatedAt, list[j].CreatedAt, list[i].ID, list[j].ID)
	})
	return list, nil
}

// ReinvestmentRepo tabla reinversiones en memoria.
type ReinvestmentRepo struct {
	s    *Store
	inTx bool
}

func (r *ReinvestmentRepo) Create(ctx context.Context, ri *entity.Reinvestment) error {
	return r.s.do(ctx, r.inTx, "reinversiones.create", func(d *data) error {
		ri.ID = d.nextID()
		ri.CreatedAt = r.s.now()
		cp := *ri
		d.reinvestments = append(d.reinvestments, &cp)
		return nil
	})
}

func (r *ReinvestmentRepo) List(ctx context.Context) ([]*entity.Reinvestment, error) {
	var list []*entity.Reinvestment
	err := r.s.do(ctx, r.inTx, "reinversiones.list", func(d *data) error {
		list = make([]*entity.Reinvestment, 0, len(d.reinvestments))
		for _, ri := range d.reinvestments {
			cp := *ri
			list = append(list, &cp)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool {
		return newestFirst(list[i].CreatedAt, list[j].CreatedAt, list[i].ID, list[j].ID)
	})
	return list, nil
}

// CashRepo tabla dinero en memoria.
type CashRepo struct {
	s    *Store
	inTx bool
}

func (r *CashRepo) Get(ctx context.Context, id int64) (*entity.CashBalance, error) {
	var out *entity.CashBalance
	err := r.s.do(ctx, r.inTx, "dinero.get", func(d *data) error {
		amount, ok := d.cash[id]
		if !ok {
			return fmt.Errorf("dinero id=%d: %w", id, domain.ErrNotFound)
		}
		out = &entity.CashBalance{ID: id, Amount: amount}
		return nil
	})
	return out, err
}

func (r *CashRepo) GetForUpdate(ctx context.Context, id int64) (*entity.CashBalance, error) {
	return r.Get(ctx, id)
}

func (r *CashRepo) CompareAndSet(ctx context.Context, id int64, expected, amount decimal.Decimal) error {
	return r.s.do(ctx, r.inTx, "dinero.cas", func(d *data) error {
		cur, ok := d.cash[id]
		if !ok || !cur.Equal(expected) {
			return domain.ErrConflict
		}
		d.cash[id] = amount
		return nil
	})
}

// UserRepo tabla usuarios en memoria.
type UserRepo struct {
	s *Store
}

func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	return r.s.do(ctx, false, "usuarios.create", func(d *data) error {
		for _, existing := range d.users {
			if strings.EqualFold(existing.Email, u.Email) {
				return domain.ErrDuplicate
			}
		}
		cp := *u
		d.users[u.ID] = &cp
		return nil
	})
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var out *entity.User
	err := r.s.do(ctx, false, "usuarios.get", func(d *data) error {
		if u, ok := d.users[id]; ok {
			cp := *u
			out = &cp
		}
		return nil
	})
	return out, err
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var out *entity.User
	err := r.s.do(ctx, false, "usuarios.get", func(d *data) error {
		for _, u := range d.users {
			if strings.EqualFold(u.Email, email) {
				cp := *u
				out = &cp
				return nil
			}
		}
		return nil
	})
	return out, err
}
