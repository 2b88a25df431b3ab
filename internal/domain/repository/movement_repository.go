package repository

import (
	"context"

	"github.com/jhoicas/stock-ledger/internal/domain/entity"
)

// MovementRepository define el puerto de persistencia para movimientos (solo inserción y lectura).
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.Movement) error
	// ListByProduct devuelve los movimientos del producto por timestamp ascendente.
	ListByProduct(ctx context.Context, productID string) ([]*entity.Movement, error)
	// ListAll devuelve todos los movimientos por timestamp ascendente.
	ListAll(ctx context.Context) ([]*entity.Movement, error)
	// DeleteByProduct elimina el historial de un producto (solo como cascada de su borrado).
	DeleteByProduct(ctx context.Context, productID string) error
}
