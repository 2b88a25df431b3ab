package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación en memoria de MovementRepository.
type MovementRepo struct {
	s  *Store
	tx *state
}

// Create inserta el movimiento; falla si el producto no existe (equivalente a la FK).
func (r *MovementRepo) Create(_ context.Context, movement *entity.Movement) error {
	return r.s.view(r.tx, func(st *state) error {
		if _, ok := st.products[movement.ProductID]; !ok {
			return fmt.Errorf("create movement: producto %s no existe", movement.ProductID)
		}
		if _, ok := st.movements[movement.ID]; ok {
			return fmt.Errorf("create movement: id duplicado %s", movement.ID)
		}
		st.seq++
		st.movements[movement.ID] = movementRecord{seq: st.seq, mov: *movement}
		st.byProduct[movement.ProductID] = append(st.byProduct[movement.ProductID], movement.ID)
		return nil
	})
}

func (r *MovementRepo) ListByProduct(_ context.Context, productID string) ([]*entity.Movement, error) {
	var recs []movementRecord
	err := r.s.view(r.tx, func(st *state) error {
		for _, id := range st.byProduct[productID] {
			recs = append(recs, st.movements[id])
		}
		return nil
	})
	return sortedAsc(recs), err
}

func (r *MovementRepo) ListAll(_ context.Context) ([]*entity.Movement, error) {
	var recs []movementRecord
	err := r.s.view(r.tx, func(st *state) error {
		for _, rec := range st.movements {
			recs = append(recs, rec)
		}
		return nil
	})
	return sortedAsc(recs), err
}

func (r *MovementRepo) DeleteByProduct(_ context.Context, productID string) error {
	return r.s.view(r.tx, func(st *state) error {
		for _, id := range st.byProduct[productID] {
			delete(st.movements, id)
		}
		delete(st.byProduct, productID)
		return nil
	})
}

func sortRecords(recs []movementRecord, desc bool) {
	sort.Slice(recs, func(i, j int) bool {
		a, b := recs[i], recs[j]
		if !a.mov.Timestamp.Equal(b.mov.Timestamp) {
			if desc {
				return a.mov.Timestamp.After(b.mov.Timestamp)
			}
			return a.mov.Timestamp.Before(b.mov.Timestamp)
		}
		if desc {
			return a.seq > b.seq
		}
		return a.seq < b.seq
	})
}

func sortedAsc(recs []movementRecord) []*entity.Movement {
	sortRecords(recs, false)
	out := make([]*entity.Movement, 0, len(recs))
	for _, rec := range recs {
		m := rec.mov
		out = append(out, &m)
	}
	return out
}
