package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/MiNegocio-api/internal/domain/entity"
	"github.com/jhoicas/MiNegocio-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo tabla ventas.
type SaleRepo struct {
	q Querier
}

func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create inserta la venta; created_at lo pone la base.
func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	query := `
		INSERT INTO ventas ("productoId", "nombreProducto", cantidad, "precioUnitario", total)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query, s.ProductID, s.ProductName, s.Quantity, s.UnitPrice, s.Total).
		Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert venta: %w", err)
	}
	return nil
}

func (r *SaleRepo) List(ctx context.Context) ([]*entity.Sale, error) {
	query := `
		SELECT id, "productoId", "nombreProducto", cantidad, "precioUnitario", total, created_at
		FROM ventas ORDER BY created_at DESC, id DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list ventas: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Sale, 0)
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.ProductID, &s.ProductName, &s.Quantity, &s.UnitPrice, &s.Total, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan venta: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
