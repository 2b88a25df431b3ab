package inventory

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

// LedgerUseCase lecturas del historial y reconciliación de total_stock.
// total_stock es un agregado materializado: siempre se puede reconstruir sumando el historial.
type LedgerUseCase struct {
	txRunner TxRunner
	log      zerolog.Logger
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(txRunner TxRunner, log zerolog.Logger) *LedgerUseCase {
	return &LedgerUseCase{txRunner: txRunner, log: log}
}

// ReconcileResult resultado de reconciliar un producto.
type ReconcileResult struct {
	ProductID string
	Recorded  int64 // total_stock antes de reconciliar
	Computed  int64 // suma con signo del historial
	Repaired  bool
}

// Drift diferencia entre lo guardado y lo calculado.
func (r ReconcileResult) Drift() int64 { return r.Recorded - r.Computed }

// History devuelve el historial por timestamp ascendente. productID vacío = todos los productos.
// Un producto inexistente (o ya eliminado) tiene historial vacío.
func (uc *LedgerUseCase) History(ctx context.Context, productID string) ([]*entity.Movement, error) {
	var list []*entity.Movement
	err := uc.txRunner.Run(ctx, func(_ repository.ProductRepository, movRepo repository.MovementRepository) error {
		var err error
		if productID == "" {
			list, err = movRepo.ListAll(ctx)
		} else {
			list, err = movRepo.ListByProduct(ctx, productID)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []*entity.Movement{}
	}
	return list, nil
}

// SumHistory suma con signo las cantidades convertidas.
func SumHistory(movements []*entity.Movement) int64 {
	var total int64
	for _, m := range movements {
		total += m.SignedQuantity()
	}
	return total
}

// Reconcile recalcula total_stock del producto desde su historial y lo corrige si hay deriva.
func (uc *LedgerUseCase) Reconcile(ctx context.Context, productID string) (*ReconcileResult, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	var res *ReconcileResult
	err := uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, movRepo repository.MovementRepository) error {
		var err error
		res, err = reconcileOne(ctx, productRepo, movRepo, productID)
		return err
	})
	if err != nil {
		return nil, err
	}
	uc.logResult(res)
	return res, nil
}

// ReconcileAll reconcilia todos los productos del catálogo en una sola transacción.
func (uc *LedgerUseCase) ReconcileAll(ctx context.Context) ([]ReconcileResult, error) {
	var results []ReconcileResult
	err := uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, movRepo repository.MovementRepository) error {
		products, err := productRepo.List(ctx)
		if err != nil {
			return err
		}
		results = make([]ReconcileResult, 0, len(products))
		for _, p := range products {
			res, err := reconcileOne(ctx, productRepo, movRepo, p.ID)
			if err != nil {
				return err
			}
			results = append(results, *res)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	for i := range results {
		uc.logResult(&results[i])
	}
	return results, nil
}

func reconcileOne(
	ctx context.Context,
	productRepo repository.ProductRepository,
	movRepo repository.MovementRepository,
	productID string,
) (*ReconcileResult, error) {
	product, err := productRepo.GetForUpdate(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	history, err := movRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	res := &ReconcileResult{
		ProductID: productID,
		Recorded:  product.TotalStock,
		Computed:  SumHistory(history),
	}
	if res.Drift() != 0 {
		if err := productRepo.SetStock(ctx, productID, res.Computed); err != nil {
			return nil, err
		}
		res.Repaired = true
	}
	return res, nil
}

func (uc *LedgerUseCase) logResult(res *ReconcileResult) {
	if !res.Repaired {
		uc.log.Debug().Str("product_id", res.ProductID).Int64("total", res.Computed).Msg("stock consistente")
		return
	}
	uc.log.Warn().
		Str("product_id", res.ProductID).
		Int64("recorded", res.Recorded).
		Int64("computed", res.Computed).
		Int64("drift", res.Drift()).
		Msg("deriva de stock corregida")
}
