package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/mm-inventario/internal/application/dto"
	"github.com/jhoicas/mm-inventario/internal/application/usecase"
)

// SettingsHandler configuración monetaria: lectura, borrador y confirmación.
type SettingsHandler struct {
	uc *usecase.SettingsUseCase
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(uc *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// Get GET /api/settings (lo guardado).
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Draft GET /api/settings/draft
func (h *SettingsHandler) Draft(c *fiber.Ctx) error {
	out, err := h.uc.Draft(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// PatchDraft godoc
// @Summary      Editar borrador de monedas
// @Description  Aplica altas/ediciones, bajas y moneda base sobre el borrador. No persiste.
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SettingsDraftPatch  true  "base_currency, upsert, remove"
// @Success      200   {object}  dto.SettingsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/settings/draft [patch]
func (h *SettingsHandler) PatchDraft(c *fiber.Ctx) error {
	var in dto.SettingsDraftPatch
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Apply(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Commit godoc
// @Summary      Guardar configuración
// @Description  Valida el borrador y lo persiste. Solo ADMIN.
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SettingsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/settings/draft/commit [post]
func (h *SettingsHandler) Commit(c *fiber.Ctx) error {
	out, err := h.uc.Commit(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Discard DELETE /api/settings/draft
func (h *SettingsHandler) Discard(c *fiber.Ctx) error {
	h.uc.Discard()
	return c.SendStatus(fiber.StatusNoContent)
}
