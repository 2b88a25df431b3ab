// Package stock contiene la conversión caja/unidad (servicio de dominio puro).
package stock

import (
	"math"

	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
)

// Display cantidad expresada como cajas completas + unidades sueltas.
type Display struct {
	Boxes int64
	Units int64
}

// ToUnits convierte cajas + unidades a unidades sueltas.
// Total = Cajas * Capacidad + Unidades. Conteos negativos son ErrInvalidInput y un total
// que no cabe en int64 es ErrQuantityOverflow.
func ToUnits(boxCount, unitCount, boxCapacity int) (int64, error) {
	if boxCapacity < 1 {
		return 0, domain.ErrInvalidCapacity
	}
	if boxCount < 0 || unitCount < 0 {
		return 0, domain.ErrInvalidInput
	}
	boxes, units, c := int64(boxCount), int64(unitCount), int64(boxCapacity)
	if boxes > (math.MaxInt64-units)/c {
		return 0, domain.ErrQuantityOverflow
	}
	return boxes*c + units, nil
}

// Apply suma delta al total y falla si el resultado se sale de int64.
func Apply(total, delta int64) (int64, error) {
	if (delta > 0 && total > math.MaxInt64-delta) || (delta < 0 && total < math.MinInt64-delta) {
		return 0, domain.ErrQuantityOverflow
	}
	return total + delta, nil
}

// ToDisplay descompone un total en cajas + resto usando división entera por piso:
// el resto queda siempre en [0, capacidad). Para -5 con capacidad 12 devuelve {-1, 7}.
func ToDisplay(totalUnits int64, boxCapacity int) (Display, error) {
	if boxCapacity < 1 {
		return Display{}, domain.ErrInvalidCapacity
	}
	c := int64(boxCapacity)
	boxes := totalUnits / c
	rem := totalUnits % c
	if rem < 0 {
		boxes--
		rem += c
	}
	return Display{Boxes: boxes, Units: rem}, nil
}

// DisplayOrRaw igual que ToDisplay, pero con capacidad inválida muestra el total como unidades sueltas.
func DisplayOrRaw(totalUnits int64, boxCapacity int) Display {
	d, err := ToDisplay(totalUnits, boxCapacity)
	if err != nil {
		return Display{Units: totalUnits}
	}
	return d
}

// Sign devuelve +1 para IN y -1 para OUT.
func Sign(kind string) int64 {
	if kind == entity.MovementKindOUT {
		return -1
	}
	return 1
}
