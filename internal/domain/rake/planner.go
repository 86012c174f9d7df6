package rake

import (
	"time"

	"github.com/railops/rake-planner-api/internal/domain/costing"
	"github.com/railops/rake-planner-api/internal/domain/entity"
)

// PlanInput snapshot consistente sobre el que se construye el plan. El caller
// lo obtiene del store externo antes de invocar; el planificador no lee ni
// muta estado compartido.
type PlanInput struct {
	Orders        []*entity.Order
	Inventories   []*entity.InventoryRecord
	Stockyards    map[string]*entity.Stockyard
	LoadingPoints map[string][]*entity.LoadingPoint
	Wagons        []*entity.Wagon
	LoadingRakes  []*entity.RakeInProgress
	Rates         costing.Rates
	Distance      costing.DistanceFunc
	Now           time.Time
}

// OrderPlan resultado por pedido: recomendación de fuente y asignación de
// vagones, o la falla que impidió planificarlo. Una falla individual nunca
// aborta el lote.
type OrderPlan struct {
	OrderID        string
	Recommendation *SourcingRecommendation
	Allocation     *WagonAllocationResult
	Failure        error
}

// Failed indica si el pedido no pudo planificarse.
func (p OrderPlan) Failed() bool {
	return p.Failure != nil
}

// PlanResult plan del lote más el resumen de demora de los rakes en cargue,
// que acompaña las recomendaciones como contexto de re-priorización.
type PlanResult struct {
	Orders    []OrderPlan
	Demurrage DemurrageSummary
}

// BuildPlan procesa cada pedido de forma independiente: selección de fuente de
// mínimo costo y asignación greedy de vagones contra la misma vista del pool.
// El planificador no descuenta vagones entre pedidos; si el caller necesita
// exclusividad secuencial debe confirmar y descontar el pool entre llamadas.
func BuildPlan(in PlanInput) PlanResult {
	result := PlanResult{
		Orders: make([]OrderPlan, 0, len(in.Orders)),
	}
	for _, order := range in.Orders {
		plan := OrderPlan{OrderID: order.ID}

		rec, err := SelectSource(order, in.Inventories, in.Stockyards, in.LoadingPoints, in.Rates, in.Distance, in.Now)
		if err != nil {
			plan.Failure = err
			result.Orders = append(result.Orders, plan)
			continue
		}
		plan.Recommendation = rec

		alloc, err := AllocateWagons(order.Quantity, in.Wagons)
		if err != nil {
			plan.Failure = err
			result.Orders = append(result.Orders, plan)
			continue
		}
		plan.Allocation = alloc
		result.Orders = append(result.Orders, plan)
	}

	result.Demurrage = EstimateDemurrage(in.LoadingRakes, in.Rates.DemurrageRatePerHourWagon, in.Now)
	return result
}
