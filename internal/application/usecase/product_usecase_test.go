package usecase_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/application/inventory"
	"github.com/jhoicas/stock-ledger/internal/application/usecase"
	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/infrastructure/memory"
)

func newCatalog() (*usecase.ProductUseCase, *inventory.RegisterMovementUseCase, *inventory.LedgerUseCase) {
	store := memory.NewStore()
	log := zerolog.Nop()
	return usecase.NewProductUseCase(store.Products(), store, log),
		inventory.NewRegisterMovementUseCase(store, inventory.LedgerConfig{AllowNegativeStock: true}, log),
		inventory.NewLedgerUseCase(store, log)
}

func ptr[T any](v T) *T { return &v }

func TestProductUseCase_Create(t *testing.T) {
	uc, _, _ := newCatalog()
	ctx := context.Background()

	out, err := uc.Create(ctx, dto.CreateProductRequest{Name: "  Feijão  ", BoxCapacity: 20})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Feijão", out.Name)
	assert.Zero(t, out.TotalStock)
	assert.Equal(t, dto.StockDisplayDTO{}, out.Stock)

	_, err = uc.Create(ctx, dto.CreateProductRequest{Name: "", BoxCapacity: 5})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Create(ctx, dto.CreateProductRequest{Name: "   ", BoxCapacity: 5})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Create(ctx, dto.CreateProductRequest{Name: "X", BoxCapacity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total, "los rechazos no crean productos")
}

func TestProductUseCase_ListOrdenadoPorNombre(t *testing.T) {
	uc, _, _ := newCatalog()
	ctx := context.Background()
	for _, n := range []string{"leite", "Arroz", "Leite", "Açúcar"} {
		_, err := uc.Create(ctx, dto.CreateProductRequest{Name: n, BoxCapacity: 1})
		require.NoError(t, err)
	}

	list, err := uc.List(ctx)
	require.NoError(t, err)
	names := make([]string, 0, list.Total)
	for _, p := range list.Items {
		names = append(names, p.Name)
	}
	// orden de bytes: mayúsculas antes que minúsculas, "ç" (UTF-8) después de ASCII
	assert.Equal(t, []string{"Arroz", "Açúcar", "Leite", "leite"}, names)
}

func TestProductUseCase_GetByID(t *testing.T) {
	uc, register, _ := newCatalog()
	ctx := context.Background()
	p, err := uc.Create(ctx, dto.CreateProductRequest{Name: "Leite", BoxCapacity: 12})
	require.NoError(t, err)
	_, err = register.RegisterMovement(ctx, inventory.MovementInput{ProductID: p.ID, Kind: entity.MovementKindIN, BoxCount: 3, UnitCount: 5})
	require.NoError(t, err)

	got, err := uc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(41), got.TotalStock)
	assert.Equal(t, dto.StockDisplayDTO{Boxes: 3, Units: 5}, got.Stock)

	_, err = uc.GetByID(ctx, "nada")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestProductUseCase_Update(t *testing.T) {
	uc, _, _ := newCatalog()
	ctx := context.Background()
	p, err := uc.Create(ctx, dto.CreateProductRequest{Name: "Leite", BoxCapacity: 12})
	require.NoError(t, err)

	out, err := uc.Update(ctx, p.ID, dto.UpdateProductRequest{BoxCapacity: ptr(6)})
	require.NoError(t, err)
	assert.Equal(t, "Leite", out.Name, "campo nil conserva su valor")
	assert.Equal(t, 6, out.BoxCapacity)

	out, err = uc.Update(ctx, p.ID, dto.UpdateProductRequest{Name: ptr(" Leite integral ")})
	require.NoError(t, err)
	assert.Equal(t, "Leite integral", out.Name)
	assert.Equal(t, 6, out.BoxCapacity)

	_, err = uc.Update(ctx, p.ID, dto.UpdateProductRequest{Name: ptr("")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Update(ctx, p.ID, dto.UpdateProductRequest{BoxCapacity: ptr(-3)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	got, err := uc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Leite integral", got.Name, "un update rechazado no persiste")
	assert.Equal(t, 6, got.BoxCapacity)

	_, err = uc.Update(ctx, "nada", dto.UpdateProductRequest{Name: ptr("X")})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestProductUseCase_DeleteEnCascada(t *testing.T) {
	uc, register, ledger := newCatalog()
	ctx := context.Background()
	keep, err := uc.Create(ctx, dto.CreateProductRequest{Name: "Arroz", BoxCapacity: 6})
	require.NoError(t, err)
	gone, err := uc.Create(ctx, dto.CreateProductRequest{Name: "Leite", BoxCapacity: 12})
	require.NoError(t, err)

	for _, id := range []string{keep.ID, gone.ID, gone.ID} {
		_, err := register.RegisterMovement(ctx, inventory.MovementInput{ProductID: id, Kind: entity.MovementKindIN, UnitCount: 1})
		require.NoError(t, err)
	}

	require.NoError(t, uc.Delete(ctx, gone.ID))

	hist, err := ledger.History(ctx, gone.ID)
	require.NoError(t, err)
	assert.Empty(t, hist)

	all, err := ledger.History(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, keep.ID, all[0].ProductID)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, keep.ID, list.Items[0].ID)

	assert.ErrorIs(t, uc.Delete(ctx, gone.ID), domain.ErrProductNotFound)
}
