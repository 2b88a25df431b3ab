package repository

import (
	"context"

	"github.com/jhoicas/stock-ledger/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	// GetByID devuelve (nil, nil) si el producto no existe.
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// GetForUpdate igual que GetByID pero bloquea la fila hasta el fin de la transacción.
	GetForUpdate(ctx context.Context, id string) (*entity.Product, error)
	// Update modifica nombre y capacidad; no toca TotalStock.
	// Update, AddStock y SetStock devuelven domain.ErrProductNotFound si el id no existe.
	Update(ctx context.Context, product *entity.Product) error
	// AddStock suma delta a total_stock en una sola sentencia.
	AddStock(ctx context.Context, id string, delta int64) error
	// SetStock fija total_stock (solo reconciliación).
	SetStock(ctx context.Context, id string, total int64) error
	// List devuelve todos los productos ordenados por nombre (orden de bytes) y luego id.
	List(ctx context.Context) ([]*entity.Product, error)
	Delete(ctx context.Context, id string) error
}
