package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// StockDisplayDTO total expresado como cajas completas + unidades sueltas.
type StockDisplayDTO struct {
	Boxes int64 `json:"boxes"`
	Units int64 `json:"units"`
}
