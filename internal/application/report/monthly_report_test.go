package report_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/application/inventory"
	"github.com/jhoicas/stock-ledger/internal/application/report"
	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/infrastructure/memory"
)

type ledgerAt struct {
	store    *memory.Store
	register *inventory.RegisterMovementUseCase
	now      time.Time
}

func newLedger(t *testing.T) *ledgerAt {
	t.Helper()
	l := &ledgerAt{store: memory.NewStore()}
	l.register = inventory.NewRegisterMovementUseCase(l.store, inventory.LedgerConfig{AllowNegativeStock: true}, zerolog.Nop()).
		WithClock(func() time.Time { return l.now })
	return l
}

func (l *ledgerAt) product(t *testing.T, id, name string, capacity int) {
	t.Helper()
	require.NoError(t, l.store.Products().Create(context.Background(), &entity.Product{ID: id, Name: name, BoxCapacity: capacity}))
}

func (l *ledgerAt) moveAt(t *testing.T, at time.Time, id, kind string, boxes, units int) {
	t.Helper()
	l.now = at
	_, err := l.register.RegisterMovement(context.Background(), inventory.MovementInput{
		ProductID: id, Kind: kind, BoxCount: boxes, UnitCount: units,
	})
	require.NoError(t, err)
}

type capturePDF struct {
	rep *dto.MonthlyReportResponse
	sum *dto.MonthlySummaryResponse
}

func (c *capturePDF) GenerateMonthlyReportPDF(_ context.Context, rep *dto.MonthlyReportResponse, sum *dto.MonthlySummaryResponse) ([]byte, error) {
	c.rep, c.sum = rep, sum
	return []byte("%PDF-fake"), nil
}

func utc(y int, m time.Month, d, h, min int) time.Time {
	return time.Date(y, m, d, h, min, 0, 0, time.UTC)
}

func TestPeriod(t *testing.T) {
	assert.Equal(t, "2024-03", report.Period(3, 2024))
	assert.Equal(t, "0999-12", report.Period(12, 999))
}

func TestMonthRange_Validacion(t *testing.T) {
	for _, c := range [][2]int{{0, 2024}, {13, 2024}, {3, 0}, {3, 10000}} {
		_, _, err := report.MonthRange(c[0], c[1], time.UTC)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "%v", c)
	}
	from, to, err := report.MonthRange(12, 2024, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, utc(2024, time.December, 1, 0, 0), from)
	assert.Equal(t, utc(2025, time.January, 1, 0, 0), to)
}

func TestMonthly_FiltraPorMesYOrdenaDescendente(t *testing.T) {
	l := newLedger(t)
	l.product(t, "p1", "Leite", 12)
	l.moveAt(t, utc(2024, time.February, 29, 23, 59), "p1", entity.MovementKindIN, 1, 0)
	l.moveAt(t, utc(2024, time.March, 1, 0, 0), "p1", entity.MovementKindIN, 2, 0)
	l.moveAt(t, utc(2024, time.March, 20, 12, 0), "p1", entity.MovementKindOUT, 0, 5)
	l.moveAt(t, utc(2024, time.March, 31, 23, 59), "p1", entity.MovementKindIN, 0, 1)
	l.moveAt(t, utc(2024, time.April, 1, 0, 0), "p1", entity.MovementKindIN, 3, 0)
	l.moveAt(t, utc(2024, time.April, 10, 8, 0), "p1", entity.MovementKindOUT, 1, 0)

	uc := report.NewMonthlyReportUseCase(l.store.Reports(), time.UTC, nil)
	rep, err := uc.Monthly(context.Background(), 3, 2024)
	require.NoError(t, err)

	assert.Equal(t, "2024-03", rep.Period)
	require.Len(t, rep.Items, 3)
	assert.Equal(t, utc(2024, time.March, 31, 23, 59), rep.Items[0].Timestamp)
	assert.Equal(t, utc(2024, time.March, 20, 12, 0), rep.Items[1].Timestamp)
	assert.Equal(t, utc(2024, time.March, 1, 0, 0), rep.Items[2].Timestamp)
	assert.Equal(t, "Leite", rep.Items[0].ProductName)
	assert.Equal(t, entity.MovementKindOUT, rep.Items[1].Kind)
	assert.Equal(t, 5, rep.Items[1].UnitCount)
}

func TestMonthly_SinMovimientosDevuelveListaVacia(t *testing.T) {
	l := newLedger(t)
	uc := report.NewMonthlyReportUseCase(l.store.Reports(), nil, nil)
	rep, err := uc.Monthly(context.Background(), 7, 2023)
	require.NoError(t, err)
	assert.NotNil(t, rep.Items)
	assert.Empty(t, rep.Items)
	assert.Equal(t, "2023-07", rep.Period)
}

func TestMonthly_MesCortadoEnZonaLocal(t *testing.T) {
	l := newLedger(t)
	l.product(t, "p1", "Leite", 12)
	// 02:00Z del 1 de abril = 23:00 del 31 de marzo en UTC-3
	l.moveAt(t, utc(2024, time.April, 1, 2, 0), "p1", entity.MovementKindIN, 1, 0)

	loc := time.FixedZone("BRT", -3*60*60)
	uc := report.NewMonthlyReportUseCase(l.store.Reports(), loc, nil)

	march, err := uc.Monthly(context.Background(), 3, 2024)
	require.NoError(t, err)
	require.Len(t, march.Items, 1)
	assert.Equal(t, 31, march.Items[0].Timestamp.Day())

	april, err := uc.Monthly(context.Background(), 4, 2024)
	require.NoError(t, err)
	assert.Empty(t, april.Items)
}

func TestMonthlySummary(t *testing.T) {
	l := newLedger(t)
	l.product(t, "p1", "Leite", 12)
	l.product(t, "p2", "Arroz", 6)
	l.moveAt(t, utc(2024, time.March, 2, 9, 0), "p1", entity.MovementKindIN, 2, 0)
	l.moveAt(t, utc(2024, time.March, 3, 9, 0), "p1", entity.MovementKindOUT, 0, 30)
	l.moveAt(t, utc(2024, time.March, 4, 9, 0), "p2", entity.MovementKindIN, 1, 1)
	l.moveAt(t, utc(2024, time.April, 4, 9, 0), "p2", entity.MovementKindIN, 9, 0)

	uc := report.NewMonthlyReportUseCase(l.store.Reports(), time.UTC, nil)
	sum, err := uc.MonthlySummary(context.Background(), 3, 2024)
	require.NoError(t, err)

	require.Len(t, sum.Items, 2)
	assert.Equal(t, dto.MonthlySummaryItem{ProductID: "p2", ProductName: "Arroz", UnitsIn: 7, Net: 7, Movements: 1}, sum.Items[0])
	assert.Equal(t, dto.MonthlySummaryItem{ProductID: "p1", ProductName: "Leite", UnitsIn: 24, UnitsOut: 30, Net: -6, Movements: 2}, sum.Items[1])
}

func TestMonthlyPDF(t *testing.T) {
	l := newLedger(t)
	l.product(t, "p1", "Leite", 12)
	l.moveAt(t, utc(2024, time.March, 2, 9, 0), "p1", entity.MovementKindIN, 2, 0)

	gen := &capturePDF{}
	uc := report.NewMonthlyReportUseCase(l.store.Reports(), time.UTC, gen)
	out, err := uc.MonthlyPDF(context.Background(), 3, 2024)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), out)
	require.NotNil(t, gen.rep)
	assert.Len(t, gen.rep.Items, 1)
	require.Len(t, gen.sum.Items, 1)
	assert.Equal(t, int64(24), gen.sum.Items[0].UnitsIn)

	_, err = uc.MonthlyPDF(context.Background(), 13, 2024)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = report.NewMonthlyReportUseCase(l.store.Reports(), time.UTC, nil).MonthlyPDF(context.Background(), 3, 2024)
	assert.Error(t, err)
}
