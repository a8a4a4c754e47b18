package http

import (
	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/jhoicas/mm-inventario/internal/application/analytics"
)

// DashboardHandler maneja el endpoint de resumen.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve conteos, unidades totales, alertas de stock bajo y valorización.
// GET /api/dashboard
//
// La valorización se expresa en la moneda base (price × rateToBase × qty).
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}
