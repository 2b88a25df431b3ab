// Package memory implementa los puertos de persistencia en memoria.
// Pensado para tests y demos: mismo contrato transaccional que los adaptadores SQL.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/stock-ledger/internal/application/inventory"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

var _ inventory.TxRunner = (*Store)(nil)

type movementRecord struct {
	seq int64
	mov entity.Movement
}

type state struct {
	products  map[string]entity.Product
	movements map[string]movementRecord
	// índice productID → ids de movimientos, borrados junto con el producto
	byProduct map[string][]string
	seq       int64
}

func (s *state) clone() *state {
	c := &state{
		products:  make(map[string]entity.Product, len(s.products)),
		movements: make(map[string]movementRecord, len(s.movements)),
		byProduct: make(map[string][]string, len(s.byProduct)),
		seq:       s.seq,
	}
	for k, v := range s.products {
		c.products[k] = v
	}
	for k, v := range s.movements {
		c.movements[k] = v
	}
	for k, v := range s.byProduct {
		c.byProduct[k] = append([]string(nil), v...)
	}
	return c
}

// Store base de datos en memoria. Un único mutex serializa todas las operaciones.
type Store struct {
	mu sync.Mutex
	st *state
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{st: &state{
		products:  make(map[string]entity.Product),
		movements: make(map[string]movementRecord),
		byProduct: make(map[string][]string),
	}}
}

// Products repositorio de productos fuera de transacción.
func (s *Store) Products() *ProductRepo { return &ProductRepo{s: s} }

// Movements repositorio de movimientos fuera de transacción.
func (s *Store) Movements() *MovementRepo { return &MovementRepo{s: s} }

// Reports repositorio de reportes.
func (s *Store) Reports() *ReportRepo { return &ReportRepo{s: s} }

// Run ejecuta fn con el mutex tomado sobre una copia del estado; la copia reemplaza
// al estado solo si fn no devuelve error (Commit), si no se descarta (Rollback).
func (s *Store) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movRepo repository.MovementRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.st.clone()
	if err := fn(&ProductRepo{s: s, tx: work}, &MovementRepo{s: s, tx: work}); err != nil {
		return err
	}
	s.st = work
	return nil
}

// view ejecuta fn sobre el estado de la tx si existe, o sobre el estado compartido con el mutex tomado.
func (s *Store) view(tx *state, fn func(st *state) error) error {
	if tx != nil {
		return fn(tx)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.st)
}
