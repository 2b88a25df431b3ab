package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/application/inventory"
	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
	"github.com/jhoicas/stock-ledger/internal/domain/stock"
)

// ProductUseCase casos de uso del catálogo. TotalStock se maneja vía movimientos.
type ProductUseCase struct {
	repo     repository.ProductRepository
	txRunner inventory.TxRunner
	log      zerolog.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, txRunner inventory.TxRunner, log zerolog.Logger) *ProductUseCase {
	return &ProductUseCase{repo: repo, txRunner: txRunner, log: log}
}

func validateProduct(name string, boxCapacity int) error {
	if name == "" || boxCapacity < 1 {
		return domain.ErrInvalidInput
	}
	return nil
}

// Create registra un nuevo producto con TotalStock en 0.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if err := validateProduct(name, in.BoxCapacity); err != nil {
		return nil, err
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        name,
		BoxCapacity: in.BoxCapacity,
		TotalStock:  0,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	uc.log.Info().Str("product_id", product.ID).Str("name", product.Name).Int("box_capacity", product.BoxCapacity).Msg("producto creado")
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID. Devuelve ErrProductNotFound si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return toProductResponse(product), nil
}

// Update cambia nombre y/o capacidad. No recalcula movimientos pasados: la nueva capacidad
// solo afecta conversiones futuras y la visualización. Bloquea la fila igual que RegisterMovement.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	var product *entity.Product
	err := uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, _ repository.MovementRepository) error {
		var err error
		product, err = productRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}
		if in.Name != nil {
			product.Name = strings.TrimSpace(*in.Name)
		}
		if in.BoxCapacity != nil {
			product.BoxCapacity = *in.BoxCapacity
		}
		if err := validateProduct(product.Name, product.BoxCapacity); err != nil {
			return err
		}
		product.UpdatedAt = time.Now()
		return productRepo.Update(ctx, product)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("product_id", product.ID).Str("name", product.Name).Int("box_capacity", product.BoxCapacity).Msg("producto actualizado")
	return toProductResponse(product), nil
}

// Delete elimina el producto y, en cascada, todo su historial de movimientos.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	err := uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, movRepo repository.MovementRepository) error {
		product, err := productRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}
		if err := movRepo.DeleteByProduct(ctx, id); err != nil {
			return err
		}
		return productRepo.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	uc.log.Info().Str("product_id", id).Msg("producto eliminado con su historial")
	return nil
}

// List devuelve el catálogo ordenado por nombre ascendente (orden de bytes, sensible a mayúsculas).
func (uc *ProductUseCase) List(ctx context.Context) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	d := stock.DisplayOrRaw(p.TotalStock, p.BoxCapacity)
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		BoxCapacity: p.BoxCapacity,
		TotalStock:  p.TotalStock,
		Stock:       dto.StockDisplayDTO{Boxes: d.Boxes, Units: d.Units},
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
