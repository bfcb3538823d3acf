package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/S-FND/esg-core-api/internal/application/analytics"
	"github.com/S-FND/esg-core-api/internal/application/dto"
)

// DashboardHandler expone el resumen agregado de emisiones del tenant.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen de emisiones del período
// @Description  Totales por alcance, por instalación, serie mensual y
// @Description  completitud de captura por fuente. Solo cuenta registros
// @Description  enviados, verificados o aprobados.
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        period  query  string  true  "año de reporte, ej. 2024"
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	period := c.Query("period")
	if period == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "period es requerido"})
	}
	summary, err := h.uc.Summary(c.Context(), GetCompanyID(c), period)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(summary)
}
