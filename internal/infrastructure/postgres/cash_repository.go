package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/MiNegocio-api/internal/domain"
	"github.com/jhoicas/MiNegocio-api/internal/domain/entity"
	"github.com/jhoicas/MiNegocio-api/internal/domain/repository"
)

var _ repository.CashRepository = (*CashRepo)(nil)

// CashRepo fila única de la tabla dinero.
type CashRepo struct {
	q Querier
}

func NewCashRepository(q Querier) *CashRepo {
	return &CashRepo{q: q}
}

func (r *CashRepo) Get(ctx context.Context, id int64) (*entity.CashBalance, error) {
	return r.get(ctx, `SELECT id, monto FROM dinero WHERE id = $1`, id)
}

func (r *CashRepo) GetForUpdate(ctx context.Context, id int64) (*entity.CashBalance, error) {
	return r.get(ctx, `SELECT id, monto FROM dinero WHERE id = $1 FOR UPDATE`, id)
}

func (r *CashRepo) get(ctx context.Context, query string, id int64) (*entity.CashBalance, error) {
	var c entity.CashBalance
	if err := r.q.QueryRow(ctx, query, id).Scan(&c.ID, &c.Amount); err != nil {
		if isNoRows(err) {
			return nil, fmt.Errorf("dinero id=%d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get dinero: %w", err)
	}
	return &c, nil
}

// CompareAndSet solo escribe si nadie cambió el saldo desde que se leyó.
func (r *CashRepo) CompareAndSet(ctx context.Context, id int64, expected, amount decimal.Decimal) error {
	cmd, err := r.q.Exec(ctx, `UPDATE dinero SET monto = $3 WHERE id = $1 AND monto = $2`, id, expected, amount)
	if err != nil {
		return fmt.Errorf("update dinero: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrConflict
	}
	return nil
}
