package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/domain"
)

// errorJSON responde con el cuerpo de error estándar.
func errorJSON(c *fiber.Ctx, status int, code, msg string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

func invalidBody(c *fiber.Ctx) error {
	return errorJSON(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
}

// domainError traduce errores de dominio a HTTP. El orden importa: los errores
// específicos envuelven a los genéricos.
func domainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrEmptyMovement):
		return errorJSON(c, fiber.StatusBadRequest, "EMPTY_MOVEMENT", err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		return errorJSON(c, fiber.StatusBadRequest, "VALIDATION", err.Error())
	case errors.Is(err, domain.ErrInvalidCapacity):
		return errorJSON(c, fiber.StatusUnprocessableEntity, "INVALID_CAPACITY", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return errorJSON(c, fiber.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, domain.ErrInsufficientStock):
		return errorJSON(c, fiber.StatusConflict, "INSUFFICIENT_STOCK", "stock insuficiente")
	case errors.Is(err, domain.ErrUnauthorized):
		return errorJSON(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "credenciales inválidas")
	default:
		return errorJSON(c, fiber.StatusInternalServerError, "INTERNAL", err.Error())
	}
}
