package http

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-ledger/internal/application/report"
)

// ReportHandler expone el reporte mensual en JSON y PDF.
type ReportHandler struct {
	uc *report.MonthlyReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.MonthlyReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// monthYear lee ?month=&year=; valores no enteros -> ok=false.
func monthYear(c *fiber.Ctx) (month, year int, ok bool) {
	m, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		return 0, 0, false
	}
	y, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		return 0, 0, false
	}
	return m, y, true
}

func badPeriod(c *fiber.Ctx) error {
	return errorJSON(c, fiber.StatusBadRequest, "VALIDATION", "month y year deben ser enteros")
}

// Monthly godoc
// @Summary      Reporte mensual de movimientos (más reciente primero)
// @Tags         reports
// @Produce      json
// @Param        month  query  int  true  "Mes 1-12"
// @Param        year   query  int  true  "Año"
// @Success      200  {object}  dto.MonthlyReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/monthly [get]
func (h *ReportHandler) Monthly(c *fiber.Ctx) error {
	month, year, ok := monthYear(c)
	if !ok {
		return badPeriod(c)
	}
	out, err := h.uc.Monthly(c.UserContext(), month, year)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// MonthlySummary godoc
// @Summary      Totales del mes por producto
// @Tags         reports
// @Produce      json
// @Param        month  query  int  true  "Mes 1-12"
// @Param        year   query  int  true  "Año"
// @Success      200  {object}  dto.MonthlySummaryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/monthly/summary [get]
func (h *ReportHandler) MonthlySummary(c *fiber.Ctx) error {
	month, year, ok := monthYear(c)
	if !ok {
		return badPeriod(c)
	}
	out, err := h.uc.MonthlySummary(c.UserContext(), month, year)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// MonthlyPDF godoc
// @Summary      Reporte mensual en PDF
// @Tags         reports
// @Produce      application/pdf
// @Param        month  query  int  true  "Mes 1-12"
// @Param        year   query  int  true  "Año"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/monthly/pdf [get]
func (h *ReportHandler) MonthlyPDF(c *fiber.Ctx) error {
	month, year, ok := monthYear(c)
	if !ok {
		return badPeriod(c)
	}
	pdf, err := h.uc.MonthlyPDF(c.UserContext(), month, year)
	if err != nil {
		return domainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="movimientos-%s.pdf"`, report.Period(month, year)))
	return c.Send(pdf)
}
