package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/railops/rake-planner-api/internal/application/dto"
	"github.com/railops/rake-planner-api/internal/application/planning"
	"github.com/railops/rake-planner-api/internal/domain"
)

// PlanningHandler maneja las peticiones HTTP de planificación de rakes.
type PlanningHandler struct {
	uc *planning.PlanUseCase
}

// NewPlanningHandler construye el handler.
func NewPlanningHandler(uc *planning.PlanUseCase) *PlanningHandler {
	return &PlanningHandler{uc: uc}
}

// PlanRakes godoc
// @Summary      Planificar rakes para un lote de pedidos
// @Description  Selecciona la fuente de mínimo costo y asigna vagones para cada
//               pedido del lote. Un pedido infactible queda como entrada failed
//               sin abortar el resto.
// @Tags         planning
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PlanRakesRequest  true  "order_ids (vacío = todos los pendientes)"
// @Success      200   {object}  dto.PlanRakesResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/planning/rakes [post]
func (h *PlanningHandler) PlanRakes(c *fiber.Ctx) error {
	var in dto.PlanRakesRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	out, err := h.uc.PlanRakes(c.Context(), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// AllocateWagons godoc
// @Summary      Analizar utilización del pool de vagones
// @Description  Asigna la cantidad dada sobre los vagones disponibles con
//               first-fit-descending y reporta utilización y remanente.
// @Tags         planning
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AllocateWagonsRequest  true  "quantity > 0 en MT"
// @Success      200   {object}  dto.WagonAllocationDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/planning/wagons/allocate [post]
func (h *PlanningHandler) AllocateWagons(c *fiber.Ctx) error {
	var in dto.AllocateWagonsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantity debe ser mayor que cero"})
	}
	out, err := h.uc.AnalyzeWagonUtilization(c.Context(), in.Quantity)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
