package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de reporte sobre SQLite.
type ReportRepo struct {
	db *sqlx.DB
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(db *sqlx.DB) *ReportRepo {
	return &ReportRepo{db: db}
}

// ListMovementsBetween compara rangos sobre el texto UTC de ancho fijo (orden lexicográfico = cronológico).
func (r *ReportRepo) ListMovementsBetween(ctx context.Context, from, to time.Time) ([]entity.ReportLine, error) {
	const query = `
	SELECT m.id AS movement_id, m.product_id, p.name AS product_name, m.kind,
	       m.box_count, m.unit_count, m.converted_quantity, m.created_at
	FROM movements m
	JOIN products  p ON p.id = m.product_id
	WHERE m.created_at >= ?
	  AND m.created_at <  ?
	ORDER BY m.created_at DESC, m.rowid DESC`

	var rows []reportRow
	if err := r.db.SelectContext(ctx, &rows, query, formatTime(from), formatTime(to)); err != nil {
		return nil, fmt.Errorf("report.ListMovementsBetween: %w", err)
	}
	lines := make([]entity.ReportLine, 0, len(rows))
	for _, row := range rows {
		ts, err := parseTime(row.CreatedAt)
		if err != nil {
			return nil, err
		}
		lines = append(lines, entity.ReportLine{
			MovementID:        row.MovementID,
			ProductID:         row.ProductID,
			ProductName:       row.ProductName,
			Kind:              row.Kind,
			BoxCount:          row.BoxCount,
			UnitCount:         row.UnitCount,
			ConvertedQuantity: row.ConvertedQuantity,
			Timestamp:         ts,
		})
	}
	return lines, nil
}
