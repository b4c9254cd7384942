package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/oliveiradev/estoque-api/internal/application/dashboard"
)

// DashboardHandler totales para la pantalla inicial del SPA.
type DashboardHandler struct {
	uc *dashboard.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *dashboard.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen del dashboard
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
