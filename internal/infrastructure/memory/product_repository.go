package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación en memoria de ProductRepository.
type ProductRepo struct {
	s  *Store
	tx *state
}

func (r *ProductRepo) Create(_ context.Context, product *entity.Product) error {
	return r.s.view(r.tx, func(st *state) error {
		if _, ok := st.products[product.ID]; ok {
			return fmt.Errorf("insert product: id duplicado %s", product.ID)
		}
		st.products[product.ID] = *product
		return nil
	})
}

func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	var out *entity.Product
	err := r.s.view(r.tx, func(st *state) error {
		if p, ok := st.products[id]; ok {
			out = &p
		}
		return nil
	})
	return out, err
}

// GetForUpdate no necesita bloqueo extra: Run ya serializa todas las transacciones.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *ProductRepo) Update(_ context.Context, product *entity.Product) error {
	return r.s.view(r.tx, func(st *state) error {
		p, ok := st.products[product.ID]
		if !ok {
			return domain.ErrProductNotFound
		}
		p.Name = product.Name
		p.BoxCapacity = product.BoxCapacity
		p.UpdatedAt = product.UpdatedAt
		st.products[product.ID] = p
		return nil
	})
}

func (r *ProductRepo) AddStock(_ context.Context, id string, delta int64) error {
	return r.s.view(r.tx, func(st *state) error {
		p, ok := st.products[id]
		if !ok {
			return domain.ErrProductNotFound
		}
		p.TotalStock += delta
		st.products[id] = p
		return nil
	})
}

func (r *ProductRepo) SetStock(_ context.Context, id string, total int64) error {
	return r.s.view(r.tx, func(st *state) error {
		p, ok := st.products[id]
		if !ok {
			return domain.ErrProductNotFound
		}
		p.TotalStock = total
		st.products[id] = p
		return nil
	})
}

func (r *ProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	var list []*entity.Product
	err := r.s.view(r.tx, func(st *state) error {
		list = make([]*entity.Product, 0, len(st.products))
		for _, p := range st.products {
			p := p
			list = append(list, &p)
		}
		return nil
	})
	// orden de bytes, igual que COLLATE "C"
	sort.Slice(list, func(i, j int) bool {
		if list[i].Name != list[j].Name {
			return list[i].Name < list[j].Name
		}
		return list[i].ID < list[j].ID
	})
	return list, err
}

// Delete borra el producto y su índice de movimientos (cascada).
func (r *ProductRepo) Delete(_ context.Context, id string) error {
	return r.s.view(r.tx, func(st *state) error {
		for _, movID := range st.byProduct[id] {
			delete(st.movements, movID)
		}
		delete(st.byProduct, id)
		delete(st.products, id)
		return nil
	})
}
