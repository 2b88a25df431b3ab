package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
	"github.com/jhoicas/stock-ledger/internal/domain/stock"
)

// LedgerConfig reglas configurables del libro de stock.
type LedgerConfig struct {
	// AllowNegativeStock permite que una salida deje el total por debajo de cero.
	AllowNegativeStock bool
}

// RegisterMovementUseCase registra movimientos IN/OUT en cajas + unidades de forma transaccional:
// bloquea la fila del producto, convierte con la capacidad vigente, inserta el movimiento
// y actualiza total_stock en la misma transacción.
type RegisterMovementUseCase struct {
	txRunner TxRunner
	cfg      LedgerConfig
	log      zerolog.Logger
	now      func() time.Time
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner, cfg LedgerConfig, log zerolog.Logger) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{
		txRunner: txRunner,
		cfg:      cfg,
		log:      log,
		now:      time.Now,
	}
}

// WithClock reemplaza el reloj usado para el timestamp de los movimientos.
func (uc *RegisterMovementUseCase) WithClock(now func() time.Time) *RegisterMovementUseCase {
	uc.now = now
	return uc
}

// MovementInput entrada para registrar un movimiento.
type MovementInput struct {
	ProductID string
	Kind      string
	BoxCount  int
	UnitCount int
	Note      string
}

func (in MovementInput) validate() error {
	if strings.TrimSpace(in.ProductID) == "" || !entity.IsValidMovementKind(in.Kind) {
		return domain.ErrInvalidInput
	}
	if in.BoxCount < 0 || in.UnitCount < 0 {
		return domain.ErrInvalidInput
	}
	if in.BoxCount == 0 && in.UnitCount == 0 {
		return domain.ErrEmptyMovement
	}
	return nil
}

// RegisterMovement valida la entrada y ejecuta lectura de capacidad → conversión → inserción → total
// como una sola transacción. Ante cualquier error no queda ningún efecto persistido.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, input MovementInput) (*entity.Movement, error) {
	if err := input.validate(); err != nil {
		uc.log.Debug().Err(err).Str("product_id", input.ProductID).Str("kind", input.Kind).Msg("movimiento rechazado")
		return nil, err
	}

	var mov *entity.Movement
	err := uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, movRepo repository.MovementRepository) error {
		// Bloquea la fila del producto: serializa contra ediciones de capacidad y otros movimientos
		product, err := productRepo.GetForUpdate(ctx, input.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}
		qty, err := stock.ToUnits(input.BoxCount, input.UnitCount, product.BoxCapacity)
		if err != nil {
			return err
		}
		delta := stock.Sign(input.Kind) * qty
		next, err := stock.Apply(product.TotalStock, delta)
		if err != nil {
			return err
		}
		if !uc.cfg.AllowNegativeStock && next < 0 {
			return domain.ErrInsufficientStock
		}

		mov = &entity.Movement{
			ID:                uuid.New().String(),
			ProductID:         product.ID,
			Kind:              input.Kind,
			BoxCount:          input.BoxCount,
			UnitCount:         input.UnitCount,
			BoxCapacity:       product.BoxCapacity,
			ConvertedQuantity: qty,
			Note:              strings.TrimSpace(input.Note),
			Timestamp:         uc.now(),
		}
		if err := movRepo.Create(ctx, mov); err != nil {
			return err
		}
		return productRepo.AddStock(ctx, product.ID, delta)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("movement_id", mov.ID).
		Str("product_id", mov.ProductID).
		Str("kind", mov.Kind).
		Int("box_count", mov.BoxCount).
		Int("unit_count", mov.UnitCount).
		Int64("units", mov.ConvertedQuantity).
		Msg("movimiento registrado")
	return mov, nil
}
