package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

// MonthlyReportUseCase proyección de solo lectura del libro por mes calendario.
type MonthlyReportUseCase struct {
	repo repository.ReportRepository
	loc  *time.Location
	pdf  ReportPDFGenerator
}

// NewMonthlyReportUseCase construye el caso de uso. loc define en qué zona horaria se cortan los meses
// (nil = UTC). pdf puede ser nil si no se exporta PDF.
func NewMonthlyReportUseCase(repo repository.ReportRepository, loc *time.Location, pdf ReportPDFGenerator) *MonthlyReportUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &MonthlyReportUseCase{repo: repo, loc: loc, pdf: pdf}
}

// Period clave canónica YYYY-MM de un mes (mes siempre con dos dígitos).
func Period(month, year int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// MonthRange devuelve [primer día del mes, primer día del mes siguiente) en loc.
func MonthRange(month, year int, loc *time.Location) (time.Time, time.Time, error) {
	if month < 1 || month > 12 || year < 1 || year > 9999 {
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	return from, from.AddDate(0, 1, 0), nil
}

func (uc *MonthlyReportUseCase) lines(ctx context.Context, month, year int) ([]entity.ReportLine, error) {
	from, to, err := MonthRange(month, year, uc.loc)
	if err != nil {
		return nil, err
	}
	return uc.repo.ListMovementsBetween(ctx, from, to)
}

// Monthly devuelve los movimientos del mes ordenados del más reciente al más antiguo.
// Sin movimientos devuelve una lista vacía, no un error.
func (uc *MonthlyReportUseCase) Monthly(ctx context.Context, month, year int) (*dto.MonthlyReportResponse, error) {
	lines, err := uc.lines(ctx, month, year)
	if err != nil {
		return nil, err
	}
	return uc.toReport(month, year, lines), nil
}

func (uc *MonthlyReportUseCase) toReport(month, year int, lines []entity.ReportLine) *dto.MonthlyReportResponse {
	items := make([]dto.ReportLineDTO, 0, len(lines))
	for _, l := range lines {
		items = append(items, dto.ReportLineDTO{
			ProductName: l.ProductName,
			Kind:        l.Kind,
			BoxCount:    l.BoxCount,
			UnitCount:   l.UnitCount,
			Timestamp:   l.Timestamp.In(uc.loc),
		})
	}
	return &dto.MonthlyReportResponse{
		Period: Period(month, year),
		Month:  month,
		Year:   year,
		Items:  items,
	}
}

// MonthlySummary totaliza entradas y salidas del mes por producto, en unidades sueltas.
func (uc *MonthlyReportUseCase) MonthlySummary(ctx context.Context, month, year int) (*dto.MonthlySummaryResponse, error) {
	lines, err := uc.lines(ctx, month, year)
	if err != nil {
		return nil, err
	}
	return &dto.MonthlySummaryResponse{
		Period: Period(month, year),
		Items:  summarize(lines),
	}, nil
}

func summarize(lines []entity.ReportLine) []dto.MonthlySummaryItem {
	byProduct := make(map[string]*dto.MonthlySummaryItem)
	for _, l := range lines {
		item, ok := byProduct[l.ProductID]
		if !ok {
			item = &dto.MonthlySummaryItem{ProductID: l.ProductID, ProductName: l.ProductName}
			byProduct[l.ProductID] = item
		}
		if l.Kind == entity.MovementKindOUT {
			item.UnitsOut += l.ConvertedQuantity
		} else {
			item.UnitsIn += l.ConvertedQuantity
		}
		item.Movements++
	}
	items := make([]dto.MonthlySummaryItem, 0, len(byProduct))
	for _, item := range byProduct {
		item.Net = item.UnitsIn - item.UnitsOut
		items = append(items, *item)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].ProductName != items[j].ProductName {
			return items[i].ProductName < items[j].ProductName
		}
		return items[i].ProductID < items[j].ProductID
	})
	return items
}

// MonthlyPDF genera el reporte del mes (detalle + resumen) en PDF.
func (uc *MonthlyReportUseCase) MonthlyPDF(ctx context.Context, month, year int) ([]byte, error) {
	if uc.pdf == nil {
		return nil, fmt.Errorf("report: generador PDF no configurado")
	}
	lines, err := uc.lines(ctx, month, year)
	if err != nil {
		return nil, err
	}
	sum := &dto.MonthlySummaryResponse{Period: Period(month, year), Items: summarize(lines)}
	return uc.pdf.GenerateMonthlyReportPDF(ctx, uc.toReport(month, year, lines), sum)
}
