package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/application/inventory"
)

// InventoryHandler maneja movimientos, historial y conciliación.
type InventoryHandler struct {
	register *inventory.RegisterMovementUseCase
	ledger   *inventory.LedgerUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(register *inventory.RegisterMovementUseCase, ledger *inventory.LedgerUseCase) *InventoryHandler {
	return &InventoryHandler{register: register, ledger: ledger}
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de stock
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "product_id, kind (IN|OUT), box_count, unit_count"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.register.RegisterMovementFromRequest(c.UserContext(), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// History godoc
// @Summary      Historial de movimientos (ascendente por fecha)
// @Tags         inventory
// @Produce      json
// @Param        product_id  query  string  false  "Filtrar por producto. Vacío = todos."
// @Success      200  {object}  dto.MovementHistoryResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) History(c *fiber.Ctx) error {
	out, err := h.ledger.HistoryResponse(c.UserContext(), c.Query("product_id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Reconcile godoc
// @Summary      Recalcular total_stock desde el historial
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  false  "Producto. Vacío = todo el catálogo."
// @Success      200  {array}   dto.ReconcileResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/reconcile [post]
func (h *InventoryHandler) Reconcile(c *fiber.Ctx) error {
	productID := c.Query("product_id")
	if productID != "" {
		res, err := h.ledger.Reconcile(c.UserContext(), productID)
		if err != nil {
			return domainError(c, err)
		}
		return c.JSON([]dto.ReconcileResponse{inventory.ToReconcileResponse(*res)})
	}
	results, err := h.ledger.ReconcileAll(c.UserContext())
	if err != nil {
		return domainError(c, err)
	}
	out := make([]dto.ReconcileResponse, 0, len(results))
	for _, r := range results {
		out = append(out, inventory.ToReconcileResponse(r))
	}
	return c.JSON(out)
}
