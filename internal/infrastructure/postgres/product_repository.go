package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/MiNegocio-api/internal/domain"
	"github.com/jhoicas/MiNegocio-api/internal/domain/entity"
	"github.com/jhoicas/MiNegocio-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, nombre, cantidad, "precioVenta", "precioCompra"`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create inserta el producto y asigna el id generado por la tabla.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO productos (nombre, cantidad, "precioVenta", "precioCompra")
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, p.Name, p.Quantity, p.SalePrice, p.PurchaseCost).Scan(&p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	return r.get(ctx, `SELECT `+productColumns+` FROM productos WHERE id = $1`, id)
}

// GetForUpdate igual que GetByID pero bloquea la fila; solo tiene sentido dentro de una tx.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	return r.get(ctx, `SELECT `+productColumns+` FROM productos WHERE id = $1 FOR UPDATE`, id)
}

func (r *ProductRepo) get(ctx context.Context, query string, id int64) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.Quantity, &p.SalePrice, &p.PurchaseCost)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

// Update reemplaza nombre, cantidad y precios.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE productos SET nombre = $2, cantidad = $3, "precioVenta" = $4, "precioCompra" = $5
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, p.ID, p.Name, p.Quantity, p.SalePrice, p.PurchaseCost)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update producto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetQuantity actualiza el stock con compare-and-swap sobre la cantidad leída.
func (r *ProductRepo) SetQuantity(ctx context.Context, id int64, expected, quantity int) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE productos SET cantidad = $3 WHERE id = $1 AND cantidad = $2`,
		id, expected, quantity,
	)
	if err != nil {
		return fmt.Errorf("update cantidad producto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrConflict
	}
	return nil
}

// List devuelve todos los productos por nombre ascendente.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, `SELECT `+productColumns+` FROM productos ORDER BY nombre ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Product, 0)
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Quantity, &p.SalePrice, &p.PurchaseCost); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina un producto por ID. Ventas y reinversiones conservan su copia del nombre.
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
