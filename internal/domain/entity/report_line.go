package entity

import "time"

// ReportLine fila del reporte mensual (movimiento unido con el nombre del producto).
type ReportLine struct {
	MovementID        string
	ProductID         string
	ProductName       string
	Kind              string
	BoxCount          int
	UnitCount         int
	ConvertedQuantity int64
	Timestamp         time.Time
}
