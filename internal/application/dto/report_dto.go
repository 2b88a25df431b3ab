package dto

import "time"

// ReportLineDTO fila del reporte mensual.
type ReportLineDTO struct {
	ProductName string    `json:"product_name"`
	Kind        string    `json:"kind"`
	BoxCount    int       `json:"box_count"`
	UnitCount   int       `json:"unit_count"`
	Timestamp   time.Time `json:"timestamp"`
}

// MonthlyReportResponse movimientos de un mes calendario, del más reciente al más antiguo.
type MonthlyReportResponse struct {
	Period string          `json:"period"` // YYYY-MM
	Month  int             `json:"month"`
	Year   int             `json:"year"`
	Items  []ReportLineDTO `json:"items"`
}

// MonthlySummaryItem totales del mes para un producto, en unidades sueltas.
type MonthlySummaryItem struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	UnitsIn     int64  `json:"units_in"`
	UnitsOut    int64  `json:"units_out"`
	Net         int64  `json:"net"`
	Movements   int    `json:"movements"`
}

// MonthlySummaryResponse resumen mensual por producto (ordenado por nombre).
type MonthlySummaryResponse struct {
	Period string               `json:"period"`
	Items  []MonthlySummaryItem `json:"items"`
}
