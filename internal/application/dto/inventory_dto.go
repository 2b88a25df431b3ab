package dto

import "time"

// RegisterMovementRequest body para POST /api/inventory/movements.
// box_count/unit_count omitidos se leen como 0 (solo en este borde HTTP).
type RegisterMovementRequest struct {
	ProductID string `json:"product_id"`
	Kind      string `json:"kind"`
	BoxCount  int    `json:"box_count"`
	UnitCount int    `json:"unit_count"`
	Note      string `json:"note,omitempty"`
}

// MovementResponse salida de un movimiento del historial.
type MovementResponse struct {
	ID                string    `json:"id"`
	ProductID         string    `json:"product_id"`
	Kind              string    `json:"kind"`
	BoxCount          int       `json:"box_count"`
	UnitCount         int       `json:"unit_count"`
	BoxCapacity       int       `json:"box_capacity"`
	ConvertedQuantity int64     `json:"converted_quantity"`
	Note              string    `json:"note,omitempty"`
	Timestamp         time.Time `json:"timestamp"`
}

// MovementHistoryResponse historial ordenado por timestamp ascendente.
type MovementHistoryResponse struct {
	Items []MovementResponse `json:"items"`
	Total int                `json:"total"`
}

// ReconcileResponse resultado de recalcular total_stock desde el historial.
type ReconcileResponse struct {
	ProductID string `json:"product_id"`
	Recorded  int64  `json:"recorded"`
	Computed  int64  `json:"computed"`
	Drift     int64  `json:"drift"`
	Repaired  bool   `json:"repaired"`
}
