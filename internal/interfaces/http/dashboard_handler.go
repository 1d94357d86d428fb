package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/andrewcurate/metronic-dashboard/internal/application/usecase"
)

// DashboardHandler series para los gráficos del dashboard (protegido).
type DashboardHandler struct {
	uc         *usecase.DashboardUseCase
	production bool
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase, production bool) *DashboardHandler {
	return &DashboardHandler{uc: uc, production: production}
}

// PatientStats godoc
// @Summary      Pacientes nuevos por mes (últimos 6 meses)
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PatientStatPoint
// @Router       /api/dashboard/patient-stats [get]
func (h *DashboardHandler) PatientStats(c *fiber.Ctx) error {
	out, err := h.uc.PatientStats(c.Context())
	if err != nil {
		return internalError(c, err, h.production)
	}
	return c.JSON(out)
}
