// Package pdf genera la versión imprimible del reporte mensual de movimientos.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la app      │  Período YYYY-MM            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Producto | Tipo | Cajas | Unidades           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Producto | Entradas | Salidas | Neto (unidades)    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/application/report"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
)

var _ report.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa report.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	title string
}

// NewMarotoReportGenerator construye el generador. title aparece en el encabezado (nombre de la tienda).
func NewMarotoReportGenerator(title string) *MarotoReportGenerator {
	return &MarotoReportGenerator{title: title}
}

// GenerateMonthlyReportPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateMonthlyReportPDF(
	_ context.Context,
	rep *dto.MonthlyReportResponse,
	summary *dto.MonthlySummaryResponse,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte mensual "+rep.Period, true).
		WithAuthor(g.title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.title, rep))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionRow("MOVIMIENTOS DEL MES"))
	m.AddRows(movementsHeaderRow())
	if len(rep.Items) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Sin movimientos en el período.", props.Text{Size: 8, Top: 2, Color: colorGray, Align: align.Center}),
		)))
	}
	m.AddRows(movementRows(rep.Items)...)

	if summary != nil && len(summary.Items) > 0 {
		m.AddRows(line.NewRow(4))
		m.AddRows(sectionRow("RESUMEN POR PRODUCTO (UNIDADES)"))
		m.AddRows(summaryHeaderRow())
		m.AddRows(summaryRows(summary.Items)...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(title string, rep *dto.MonthlyReportResponse) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New("Reporte mensual de movimientos de stock", props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("PERÍODO", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1}),
			text.New(rep.Period, props.Text{Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7}),
		),
	)
}

func sectionRow(label string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2}),
	))
}

func headerCell(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a,
		Color: colorWhite, Top: 2, Left: 1, Right: 1,
	}))
}

func headerStyle() *props.Cell {
	return &props.Cell{BackgroundColor: colorPrimary}
}

func movementsHeaderRow() core.Row {
	return row.New(8).Add(
		headerCell("Fecha", 3, align.Left),
		headerCell("Producto", 4, align.Left),
		headerCell("Tipo", 1, align.Center),
		headerCell("Cajas", 2, align.Right),
		headerCell("Unidades", 2, align.Right),
	).WithStyle(headerStyle())
}

func movementRows(items []dto.ReportLineDTO) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(6).Add(
			col.New(3).Add(text.New(it.Timestamp.Format("02/01/2006 15:04"), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(it.ProductName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(kindLabel(it.Kind), props.Text{Size: 8, Top: 1, Align: align.Center})),
			col.New(2).Add(text.New(strconv.Itoa(it.BoxCount), props.Text{Size: 8, Top: 1, Align: align.Right, Right: 1})),
			col.New(2).Add(text.New(strconv.Itoa(it.UnitCount), props.Text{Size: 8, Top: 1, Align: align.Right, Right: 1})),
		))
	}
	return result
}

func summaryHeaderRow() core.Row {
	return row.New(8).Add(
		headerCell("Producto", 5, align.Left),
		headerCell("Entradas", 2, align.Right),
		headerCell("Salidas", 2, align.Right),
		headerCell("Neto", 3, align.Right),
	).WithStyle(headerStyle())
}

func summaryRows(items []dto.MonthlySummaryItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(6).Add(
			col.New(5).Add(text.New(it.ProductName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(formatThousands(it.UnitsIn), props.Text{Size: 8, Top: 1, Align: align.Right, Right: 1})),
			col.New(2).Add(text.New(formatThousands(it.UnitsOut), props.Text{Size: 8, Top: 1, Align: align.Right, Right: 1})),
			col.New(3).Add(text.New(formatThousands(it.Net), props.Text{Style: fontstyle.Bold, Size: 8, Top: 1, Align: align.Right, Right: 1})),
		))
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

func kindLabel(kind string) string {
	if kind == entity.MovementKindOUT {
		return "Salida"
	}
	return "Entrada"
}

// formatThousands inserta puntos de miles. Ej: 25000 → "25.000", -1200 → "-1.200".
func formatThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	sign := ""
	if n < 0 {
		sign, s = "-", s[1:]
	}
	l := len(s)
	if l <= 3 {
		return sign + s
	}
	buf := make([]byte, 0, l+l/3)
	for i, c := range []byte(s) {
		if i > 0 && (l-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return sign + string(buf)
}
