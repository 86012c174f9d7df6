package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/railops/rake-planner-api/internal/application/planning"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	PlanUC      *planning.PlanUseCase
	DemurrageUC *planning.DemurrageUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Planificación de rakes
	planningGroup := api.Group("/planning")
	planningHandler := NewPlanningHandler(deps.PlanUC)
	planningGroup.Post("/rakes", planningHandler.PlanRakes)
	planningGroup.Post("/wagons/allocate", planningHandler.AllocateWagons)

	// Demora de rakes en cargue
	demurrage := api.Group("/demurrage")
	demurrageHandler := NewDemurrageHandler(deps.DemurrageUC)
	demurrage.Get("/alerts", demurrageHandler.ActiveAlerts)
	demurrage.Get("/total-cost", demurrageHandler.TotalCost)
}
