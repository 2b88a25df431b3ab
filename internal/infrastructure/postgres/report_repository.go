package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para reportes.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes. Normalmente recibe el pool.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// ListMovementsBetween movimientos con from <= created_at < to, unidos con el producto,
// del más reciente al más antiguo.
func (r *ReportRepo) ListMovementsBetween(ctx context.Context, from, to time.Time) ([]entity.ReportLine, error) {
	const query = `
	SELECT m.id, m.product_id, p.name, m.kind, m.box_count, m.unit_count, m.converted_quantity, m.created_at
	FROM movements m
	JOIN products  p ON p.id = m.product_id
	WHERE m.created_at >= $1
	  AND m.created_at <  $2
	ORDER BY m.created_at DESC, m.seq DESC`

	rows, err := r.q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("report.ListMovementsBetween: %w", err)
	}
	defer rows.Close()

	lines := []entity.ReportLine{}
	for rows.Next() {
		var l entity.ReportLine
		if err := rows.Scan(
			&l.MovementID,
			&l.ProductID,
			&l.ProductName,
			&l.Kind,
			&l.BoxCount,
			&l.UnitCount,
			&l.ConvertedQuantity,
			&l.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("report.ListMovementsBetween scan: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}
