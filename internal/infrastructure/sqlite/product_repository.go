package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, box_capacity, total_stock, created_at, updated_at`

// ProductRepo ProductRepository sobre SQLite (usable con *sqlx.DB o *sqlx.Tx).
type ProductRepo struct {
	q sqlx.ExtContext
}

// NewProductRepository construye el adaptador.
func NewProductRepository(q sqlx.ExtContext) *ProductRepo {
	return &ProductRepo{q: q}
}

func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO products (`+productColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		product.ID, product.Name, product.BoxCapacity, product.TotalStock,
		formatTime(product.CreatedAt), formatTime(product.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	var row productRow
	err := sqlx.GetContext(ctx, r.q, &row, `SELECT `+productColumns+` FROM products WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return row.toEntity()
}

// GetForUpdate en SQLite equivale a GetByID: la tx ya se abrió con BEGIN IMMEDIATE
// y tiene el bloqueo de escritura de la base.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE products SET name = ?, box_capacity = ?, updated_at = ? WHERE id = ?`,
		product.Name, product.BoxCapacity, formatTime(product.UpdatedAt), product.ID,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return mustAffect(res)
}

func (r *ProductRepo) AddStock(ctx context.Context, id string, delta int64) error {
	res, err := r.q.ExecContext(ctx, `UPDATE products SET total_stock = total_stock + ? WHERE id = ?`, delta, id)
	if err != nil {
		return fmt.Errorf("add product stock: %w", err)
	}
	return mustAffect(res)
}

func (r *ProductRepo) SetStock(ctx context.Context, id string, total int64) error {
	res, err := r.q.ExecContext(ctx, `UPDATE products SET total_stock = ? WHERE id = ?`, total, id)
	if err != nil {
		return fmt.Errorf("set product stock: %w", err)
	}
	return mustAffect(res)
}

func mustAffect(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// List ordena por nombre con COLLATE BINARY (orden de bytes, sensible a mayúsculas).
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	var rows []productRow
	err := sqlx.SelectContext(ctx, r.q, &rows,
		`SELECT `+productColumns+` FROM products ORDER BY name COLLATE BINARY ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	list := make([]*entity.Product, 0, len(rows))
	for _, row := range rows {
		p, err := row.toEntity()
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, nil
}

// Delete borra el producto; movements cae por ON DELETE CASCADE.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
