package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/mm-inventario/internal/application/dto"
	"github.com/jhoicas/mm-inventario/internal/application/inventory"
)

// InventoryHandler maneja movimientos, existencias y lista de reposición (protegido).
type InventoryHandler struct {
	uc            *inventory.MovementUseCase
	replenishment *inventory.ReplenishmentUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.MovementUseCase, replenishment *inventory.ReplenishmentUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc, replenishment: replenishment}
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de inventario
// @Description  IN suma y OUT resta. La cantidad se redondea a entero; una salida mayor al stock se rechaza.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "type (IN|OUT), warehouse_id, product_id, qty, note"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.RegisterMovement(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMovements GET /api/inventory/movements?limit=
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	list, err := h.uc.ListMovements(c.UserContext(), c.QueryInt("limit", dto.DefaultMovementLimit))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"total": len(list),
		"items": list,
	})
}

// Stock godoc
// @Summary      Existencias por almacén y producto
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        warehouse_id  query  string  false  "Filtrar por almacén. Vacío = todos."
// @Success      200  {array}   dto.StockItemDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock [get]
func (h *InventoryHandler) Stock(c *fiber.Ctx) error {
	list, err := h.uc.Stock(c.UserContext(), c.Query("warehouse_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"total": len(list),
		"items": list,
	})
}

// Quantity GET /api/stock/:warehouseId/:productId. Un par sin entrada vale 0.
func (h *InventoryHandler) Quantity(c *fiber.Ctx) error {
	out, err := h.uc.Quantity(c.UserContext(), c.Params("warehouseId"), c.Params("productId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetReplenishmentList godoc
// @Summary      Lista de reposición
// @Description  Pares almacén+producto por debajo del mínimo con la cantidad sugerida,
//
//	ordenados por mayor déficit.
//
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        warehouse_id  query  string  false  "Filtrar por almacén. Vacío = todos."
// @Success      200  {array}   dto.ReplenishmentSuggestionDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/replenishment-list [get]
func (h *InventoryHandler) GetReplenishmentList(c *fiber.Ctx) error {
	list, err := h.replenishment.GenerateReplenishmentList(c.UserContext(), c.Query("warehouse_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"total":          len(list),
		"replenishments": list,
	})
}
