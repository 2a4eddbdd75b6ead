package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/MiNegocio-api/internal/domain/entity"
	"github.com/jhoicas/MiNegocio-api/internal/domain/repository"
)

var _ repository.ReinvestmentRepository = (*ReinvestmentRepo)(nil)

// ReinvestmentRepo tabla reinversiones.
type ReinvestmentRepo struct {
	q Querier
}

func NewReinvestmentRepository(q Querier) *ReinvestmentRepo {
	return &ReinvestmentRepo{q: q}
}

func (r *ReinvestmentRepo) Create(ctx context.Context, ri *entity.Reinvestment) error {
	query := `
		INSERT INTO reinversiones ("productoId", "nombreProducto", "cantidadComprada", "costoUnitario", "costoTotal")
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query,
		ri.ProductID, ri.ProductName, ri.QuantityPurchased, ri.UnitCost, ri.TotalCost,
	).Scan(&ri.ID, &ri.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert reinversion: %w", err)
	}
	return nil
}

func (r *ReinvestmentRepo) List(ctx context.Context) ([]*entity.Reinvestment, error) {
	query := `
		SELECT id, "productoId", "nombreProducto", "cantidadComprada", "costoUnitario", "costoTotal", created_at
		FROM reinversiones ORDER BY created_at DESC, id DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list reinversiones: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Reinvestment, 0)
	for rows.Next() {
		var ri entity.Reinvestment
		if err := rows.Scan(&ri.ID, &ri.ProductID, &ri.ProductName, &ri.QuantityPurchased,
			&ri.UnitCost, &ri.TotalCost, &ri.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan reinversion: %w", err)
		}
		list = append(list, &ri)
	}
	return list, rows.Err()
}
