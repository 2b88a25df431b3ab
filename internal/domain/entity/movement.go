package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementKindIN  = "IN"  // entrada
	MovementKindOUT = "OUT" // salida
)

// Movement representa un movimiento de stock inmutable, capturado en cajas + unidades.
// BoxCapacity guarda la capacidad vigente al registrar, para que ConvertedQuantity sea reproducible.
type Movement struct {
	ID                string
	ProductID         string
	Kind              string
	BoxCount          int
	UnitCount         int
	BoxCapacity       int
	ConvertedQuantity int64 // siempre positivo; el signo lo da Kind
	Note              string
	Timestamp         time.Time
}

// SignedQuantity devuelve la contribución del movimiento al stock del producto.
func (m *Movement) SignedQuantity() int64 {
	if m.Kind == MovementKindOUT {
		return -m.ConvertedQuantity
	}
	return m.ConvertedQuantity
}

// IsValidMovementKind indica si kind es IN u OUT.
func IsValidMovementKind(kind string) bool {
	return kind == MovementKindIN || kind == MovementKindOUT
}
