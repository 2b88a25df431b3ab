package report

import (
	"context"

	"github.com/jhoicas/stock-ledger/internal/application/dto"
)

// ReportPDFGenerator puerto para generar la representación PDF del reporte mensual.
type ReportPDFGenerator interface {
	GenerateMonthlyReportPDF(ctx context.Context, report *dto.MonthlyReportResponse, summary *dto.MonthlySummaryResponse) ([]byte, error)
}
