package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/mm-inventario/internal/application/dto"
	"github.com/jhoicas/mm-inventario/internal/application/inventory"
)

// CountHandler inventarios cíclicos: abrir, contar, cerrar e imprimir (protegido).
type CountHandler struct {
	uc *inventory.CountUseCase
}

// NewCountHandler construye el handler.
func NewCountHandler(uc *inventory.CountUseCase) *CountHandler {
	return &CountHandler{uc: uc}
}

// Create godoc
// @Summary      Abrir inventario
// @Description  Congela el stock actual del almacén en una línea por producto.
// @Tags         counts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCountRequest  true  "warehouse_id"
// @Success      201   {object}  dto.CountResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/counts [post]
func (h *CountHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCountRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/inventory/counts?warehouse_id=
func (h *CountHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext(), c.Query("warehouse_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"total": len(list),
		"items": list,
	})
}

// GetByID GET /api/inventory/counts/:id
func (h *CountHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateLine godoc
// @Summary      Registrar cantidad contada
// @Tags         counts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id         path  string                  true  "ID del inventario"
// @Param        productId  path  string                  true  "ID del producto"
// @Param        body       body  dto.UpdateCountRequest  true  "counted"
// @Success      200  {object}  dto.CountLineDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inventory/counts/{id}/lines/{productId} [put]
func (h *CountHandler) UpdateLine(c *fiber.Ctx) error {
	var in dto.UpdateCountRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateCount(c.UserContext(), c.Params("id"), c.Params("productId"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Close godoc
// @Summary      Cerrar inventario
// @Description  Aplica las diferencias como movimientos ADJ y fija el stock a lo contado.
// @Tags         counts
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del inventario"
// @Success      200  {object}  dto.CountResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inventory/counts/{id}/close [post]
func (h *CountHandler) Close(c *fiber.Ctx) error {
	out, err := h.uc.Close(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Sheet descarga la hoja de conteo en PDF.
// GET /api/inventory/counts/:id/sheet.pdf
func (h *CountHandler) Sheet(c *fiber.Ctx) error {
	id := c.Params("id")
	pdf, err := h.uc.Sheet(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="inventario-%s.pdf"`, id))
	return c.Send(pdf)
}
