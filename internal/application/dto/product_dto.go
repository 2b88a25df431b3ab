package dto

import "time"

// CreateProductRequest entrada para registrar un producto en el catálogo.
type CreateProductRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	BoxCapacity int    `json:"box_capacity" validate:"required,min=1"`
}

// UpdateProductRequest entrada para editar un producto. Campos nil conservan el valor actual.
// TotalStock no se edita: se maneja vía movimientos.
type UpdateProductRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	BoxCapacity *int    `json:"box_capacity" validate:"omitempty,min=1"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	BoxCapacity int             `json:"box_capacity"`
	TotalStock  int64           `json:"total_stock"`
	Stock       StockDisplayDTO `json:"stock"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse catálogo completo (ordenado por nombre).
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
