package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/railops/rake-planner-api/internal/application/dto"
	"github.com/railops/rake-planner-api/internal/application/planning"
)

// DemurrageHandler maneja las consultas HTTP de demora de rakes en cargue.
type DemurrageHandler struct {
	uc *planning.DemurrageUseCase
}

// NewDemurrageHandler construye el handler.
func NewDemurrageHandler(uc *planning.DemurrageUseCase) *DemurrageHandler {
	return &DemurrageHandler{uc: uc}
}

// ActiveAlerts godoc
// @Summary      Alertas de demora activas
// @Description  Rakes con 12 horas o más en estado de cargue, con severidad
//               (warning, critical, severe) y costo acumulado.
// @Tags         demurrage
// @Produce      json
// @Success      200  {array}   dto.DemurrageAlertDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/demurrage/alerts [get]
func (h *DemurrageHandler) ActiveAlerts(c *fiber.Ctx) error {
	out, err := h.uc.ActiveAlerts(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// TotalCost godoc
// @Summary      Costo total de demora
// @Description  Costo acumulado de todos los rakes actualmente en cargue.
// @Tags         demurrage
// @Produce      json
// @Success      200  {object}  dto.DemurrageTotalDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/demurrage/total-cost [get]
func (h *DemurrageHandler) TotalCost(c *fiber.Ctx) error {
	out, err := h.uc.TotalCost(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
