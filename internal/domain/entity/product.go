package entity

import "time"

// Product representa un producto del catálogo.
// TotalStock se expresa en unidades sueltas y solo cambia vía movimientos (o reconciliación).
type Product struct {
	ID          string
	Name        string
	BoxCapacity int   // unidades por caja, >= 1
	TotalStock  int64 // suma con signo de ConvertedQuantity de sus movimientos
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
