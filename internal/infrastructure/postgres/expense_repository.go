package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/MiNegocio-api/internal/domain"
	"github.com/jhoicas/MiNegocio-api/internal/domain/entity"
	"github.com/jhoicas/MiNegocio-api/internal/domain/repository"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo tabla gastos.
type ExpenseRepo struct {
	q Querier
}

func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

func (r *ExpenseRepo) Create(ctx context.Context, e *entity.Expense) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO gastos (concepto, monto) VALUES ($1, $2) RETURNING id, created_at`,
		e.Concept, e.Amount,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert gasto: %w", err)
	}
	return nil
}

func (r *ExpenseRepo) GetByID(ctx context.Context, id int64) (*entity.Expense, error) {
	var e entity.Expense
	err := r.q.QueryRow(ctx,
		`SELECT id, concepto, monto, created_at FROM gastos WHERE id = $1`, id,
	).Scan(&e.ID, &e.Concept, &e.Amount, &e.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get gasto: %w", err)
	}
	return &e, nil
}

func (r *ExpenseRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM gastos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete gasto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ExpenseRepo) List(ctx context.Context) ([]*entity.Expense, error) {
	rows, err := r.q.Query(ctx, `SELECT id, concepto, monto, created_at FROM gastos ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list gastos: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Expense, 0)
	for rows.Next() {
		var e entity.Expense
		if err := rows.Scan(&e.ID, &e.Concept, &e.Amount, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan gasto: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
