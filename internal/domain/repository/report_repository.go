package repository

import (
	"context"
	"time"

	"github.com/jhoicas/stock-ledger/internal/domain/entity"
)

// ReportRepository consultas de solo lectura para reportes.
type ReportRepository interface {
	// ListMovementsBetween devuelve movimientos con from <= timestamp < to,
	// unidos con el nombre del producto, por timestamp descendente.
	ListMovementsBetween(ctx context.Context, from, to time.Time) ([]entity.ReportLine, error)
}
