package memory

import (
	"context"
	"time"

	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de reporte en memoria.
type ReportRepo struct {
	s *Store
}

func (r *ReportRepo) ListMovementsBetween(_ context.Context, from, to time.Time) ([]entity.ReportLine, error) {
	var recs []movementRecord
	names := make(map[string]string)
	err := r.s.view(nil, func(st *state) error {
		for _, rec := range st.movements {
			ts := rec.mov.Timestamp
			if ts.Before(from) || !ts.Before(to) {
				continue
			}
			recs = append(recs, rec)
			names[rec.mov.ProductID] = st.products[rec.mov.ProductID].Name
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sortRecords(recs, true)
	lines := make([]entity.ReportLine, 0, len(recs))
	for _, rec := range recs {
		m := rec.mov
		lines = append(lines, entity.ReportLine{
			MovementID:        m.ID,
			ProductID:         m.ProductID,
			ProductName:       names[m.ProductID],
			Kind:              m.Kind,
			BoxCount:          m.BoxCount,
			UnitCount:         m.UnitCount,
			ConvertedQuantity: m.ConvertedQuantity,
			Timestamp:         m.Timestamp,
		})
	}
	return lines, nil
}
