package sqlite

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

const movementColumns = `id, product_id, kind, box_count, unit_count, box_capacity, converted_quantity, note, created_at`

// MovementRepo MovementRepository sobre SQLite. El desempate por rowid conserva el orden de inserción.
type MovementRepo struct {
	q sqlx.ExtContext
}

// NewMovementRepository construye el adaptador.
func NewMovementRepository(q sqlx.ExtContext) *MovementRepo {
	return &MovementRepo{q: q}
}

func (r *MovementRepo) Create(ctx context.Context, movement *entity.Movement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO movements (`+movementColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		movement.ID, movement.ProductID, movement.Kind, movement.BoxCount, movement.UnitCount,
		movement.BoxCapacity, movement.ConvertedQuantity, movement.Note, formatTime(movement.Timestamp),
	)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

func (r *MovementRepo) ListByProduct(ctx context.Context, productID string) ([]*entity.Movement, error) {
	return r.list(ctx,
		`SELECT `+movementColumns+` FROM movements WHERE product_id = ? ORDER BY created_at ASC, rowid ASC`,
		productID)
}

func (r *MovementRepo) ListAll(ctx context.Context) ([]*entity.Movement, error) {
	return r.list(ctx, `SELECT `+movementColumns+` FROM movements ORDER BY created_at ASC, rowid ASC`)
}

func (r *MovementRepo) DeleteByProduct(ctx context.Context, productID string) error {
	if _, err := r.q.ExecContext(ctx, `DELETE FROM movements WHERE product_id = ?`, productID); err != nil {
		return fmt.Errorf("delete movements: %w", err)
	}
	return nil
}

func (r *MovementRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Movement, error) {
	var rows []movementRow
	if err := sqlx.SelectContext(ctx, r.q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	list := make([]*entity.Movement, 0, len(rows))
	for _, row := range rows {
		m, err := row.toEntity()
		if err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, nil
}
