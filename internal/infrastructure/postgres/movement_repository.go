package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

const movementColumns = `id, product_id, kind, box_count, unit_count, box_capacity, converted_quantity, note, created_at`

// MovementRepo implementación sobre PostgreSQL (usable con pool o tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento.
func (r *MovementRepo) Create(ctx context.Context, movement *entity.Movement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movements (id, product_id, kind, box_count, unit_count, box_capacity, converted_quantity, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		movement.ID, movement.ProductID, movement.Kind, movement.BoxCount, movement.UnitCount,
		movement.BoxCapacity, movement.ConvertedQuantity, movement.Note, movement.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// ListByProduct lista el historial de un producto por timestamp ascendente.
func (r *MovementRepo) ListByProduct(ctx context.Context, productID string) ([]*entity.Movement, error) {
	if !isUUID(productID) {
		return []*entity.Movement{}, nil
	}
	rows, err := r.q.Query(ctx,
		`SELECT `+movementColumns+` FROM movements WHERE product_id = $1 ORDER BY created_at ASC, seq ASC`,
		productID,
	)
	if err != nil {
		return nil, fmt.Errorf("list by product: %w", err)
	}
	return scanMovements(rows)
}

// ListAll lista todo el historial por timestamp ascendente.
func (r *MovementRepo) ListAll(ctx context.Context) ([]*entity.Movement, error) {
	rows, err := r.q.Query(ctx, `SELECT `+movementColumns+` FROM movements ORDER BY created_at ASC, seq ASC`)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	return scanMovements(rows)
}

// DeleteByProduct borra el historial del producto (cascada explícita; la FK también la declara).
func (r *MovementRepo) DeleteByProduct(ctx context.Context, productID string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM movements WHERE product_id = $1`, productID); err != nil {
		return fmt.Errorf("delete movements: %w", err)
	}
	return nil
}

func scanMovements(rows pgx.Rows) ([]*entity.Movement, error) {
	defer rows.Close()
	list := []*entity.Movement{}
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Kind, &m.BoxCount, &m.UnitCount,
			&m.BoxCapacity, &m.ConvertedQuantity, &m.Note, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
