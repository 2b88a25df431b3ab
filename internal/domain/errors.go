package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrInvalidCapacity   = errors.New("capacidad de caja inválida")

	// ErrEmptyMovement es un caso de ErrInvalidInput: cajas y unidades en cero.
	ErrEmptyMovement = fmt.Errorf("%w: movimiento sin cantidad", ErrInvalidInput)
	// ErrQuantityOverflow es un caso de ErrInvalidInput: la cantidad no cabe en int64.
	ErrQuantityOverflow = fmt.Errorf("%w: cantidad fuera de rango", ErrInvalidInput)
	// ErrProductNotFound es un caso de ErrNotFound para el catálogo.
	ErrProductNotFound = fmt.Errorf("%w: producto", ErrNotFound)
)
