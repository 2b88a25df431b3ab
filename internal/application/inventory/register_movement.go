package inventory

import (
	"context"

	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
)

// RegisterMovementFromRequest adapta el request HTTP al caso de uso RegisterMovement(ctx, MovementInput).
func (uc *RegisterMovementUseCase) RegisterMovementFromRequest(ctx context.Context, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	mov, err := uc.RegisterMovement(ctx, MovementInput{
		ProductID: in.ProductID,
		Kind:      in.Kind,
		BoxCount:  in.BoxCount,
		UnitCount: in.UnitCount,
		Note:      in.Note,
	})
	if err != nil {
		return nil, err
	}
	out := ToMovementResponse(mov)
	return &out, nil
}

// HistoryResponse adapta History a la salida HTTP.
func (uc *LedgerUseCase) HistoryResponse(ctx context.Context, productID string) (*dto.MovementHistoryResponse, error) {
	list, err := uc.History(ctx, productID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, ToMovementResponse(m))
	}
	return &dto.MovementHistoryResponse{Items: items, Total: len(items)}, nil
}

// ToMovementResponse mapea la entidad a su DTO.
func ToMovementResponse(m *entity.Movement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:                m.ID,
		ProductID:         m.ProductID,
		Kind:              m.Kind,
		BoxCount:          m.BoxCount,
		UnitCount:         m.UnitCount,
		BoxCapacity:       m.BoxCapacity,
		ConvertedQuantity: m.ConvertedQuantity,
		Note:              m.Note,
		Timestamp:         m.Timestamp,
	}
}

// ToReconcileResponse mapea el resultado de reconciliación a su DTO.
func ToReconcileResponse(r ReconcileResult) dto.ReconcileResponse {
	return dto.ReconcileResponse{
		ProductID: r.ProductID,
		Recorded:  r.Recorded,
		Computed:  r.Computed,
		Drift:     r.Drift(),
		Repaired:  r.Repaired,
	}
}
