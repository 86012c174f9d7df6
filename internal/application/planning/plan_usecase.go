package planning

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/railops/rake-planner-api/internal/application/dto"
	"github.com/railops/rake-planner-api/internal/domain"
	"github.com/railops/rake-planner-api/internal/domain/costing"
	"github.com/railops/rake-planner-api/internal/domain/entity"
	"github.com/railops/rake-planner-api/internal/domain/rake"
	"github.com/railops/rake-planner-api/internal/domain/repository"
	"github.com/railops/rake-planner-api/pkg/logger"
)

// PlanUseCase orquesta la planificación de rakes: obtiene un snapshot
// consistente del store (pedidos, inventario, stockyards, puntos de carga,
// vagones disponibles y rakes en cargue), invoca el núcleo determinista y
// mapea el resultado a DTOs. La atomicidad de confirmar un plan (asignar
// vagones, descontar inventario) pertenece al workflow externo.
type PlanUseCase struct {
	orderRepo     repository.OrderRepository
	inventoryRepo repository.InventoryRepository
	stockyardRepo repository.StockyardRepository
	lpRepo        repository.LoadingPointRepository
	wagonRepo     repository.WagonRepository
	rakeRepo      repository.RakeRepository
	rates         costing.Rates
	distance      costing.DistanceFunc
	log           *logger.Logger
}

// NewPlanUseCase construye el caso de uso de planificación.
func NewPlanUseCase(
	orderRepo repository.OrderRepository,
	inventoryRepo repository.InventoryRepository,
	stockyardRepo repository.StockyardRepository,
	lpRepo repository.LoadingPointRepository,
	wagonRepo repository.WagonRepository,
	rakeRepo repository.RakeRepository,
	rates costing.Rates,
	distance costing.DistanceFunc,
	log *logger.Logger,
) *PlanUseCase {
	if distance == nil {
		distance = costing.SyntheticDistance
	}
	return &PlanUseCase{
		orderRepo:     orderRepo,
		inventoryRepo: inventoryRepo,
		stockyardRepo: stockyardRepo,
		lpRepo:        lpRepo,
		wagonRepo:     wagonRepo,
		rakeRepo:      rakeRepo,
		rates:         rates,
		distance:      distance,
		log:           log,
	}
}

// PlanRakes planifica el lote indicado (order_ids) o todos los pedidos
// pendientes. Un pedido infactible se registra como entrada fallida y el lote
// continúa; los IDs inexistentes también quedan como entradas fallidas.
func (uc *PlanUseCase) PlanRakes(ctx context.Context, req dto.PlanRakesRequest) (*dto.PlanRakesResponse, error) {
	var (
		orders []*entity.Order
		err    error
	)
	if len(req.OrderIDs) > 0 {
		orders, err = uc.orderRepo.GetByIDs(ctx, req.OrderIDs)
	} else {
		orders, err = uc.orderRepo.ListPending(ctx)
	}
	if err != nil {
		return nil, err
	}

	// 1. Snapshot de inventario para los materiales del lote
	materialIDs := make([]string, 0, len(orders))
	seen := make(map[string]bool, len(orders))
	for _, o := range orders {
		if o.MaterialID != "" && !seen[o.MaterialID] {
			seen[o.MaterialID] = true
			materialIDs = append(materialIDs, o.MaterialID)
		}
	}
	var inventories []*entity.InventoryRecord
	if len(materialIDs) > 0 {
		inventories, err = uc.inventoryRepo.ListByMaterials(ctx, materialIDs)
		if err != nil {
			return nil, err
		}
	}

	// 2. Lookups de stockyards y puntos de carga
	yards, err := uc.stockyardRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	yardByID := make(map[string]*entity.Stockyard, len(yards))
	for _, y := range yards {
		yardByID[y.ID] = y
	}
	points, err := uc.lpRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	pointsByYard := make(map[string][]*entity.LoadingPoint, len(yards))
	for _, lp := range points {
		pointsByYard[lp.StockyardID] = append(pointsByYard[lp.StockyardID], lp)
	}

	// 3. Pool de vagones disponibles y rakes en cargue
	wagons, err := uc.wagonRepo.ListByStatus(ctx, entity.WagonStatusAvailable)
	if err != nil {
		return nil, err
	}
	loadingRakes, err := uc.rakeRepo.ListByStatus(ctx, entity.RakeStatusLoading)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	result := rake.BuildPlan(rake.PlanInput{
		Orders:        orders,
		Inventories:   inventories,
		Stockyards:    yardByID,
		LoadingPoints: pointsByYard,
		Wagons:        wagons,
		LoadingRakes:  loadingRakes,
		Rates:         uc.rates,
		Distance:      uc.distance,
		Now:           now,
	})

	resp := &dto.PlanRakesResponse{
		PlanID:      uuid.New().String(),
		GeneratedAt: now,
		Orders:      make([]dto.OrderPlanDTO, 0, len(result.Orders)),
		Demurrage:   toDemurrageSummaryDTO(result.Demurrage),
	}
	for _, plan := range result.Orders {
		resp.Orders = append(resp.Orders, uc.toOrderPlanDTO(plan))
		if plan.Failed() {
			resp.FailedCount++
			uc.log.Warn().
				Str("order_id", plan.OrderID).
				Str("reason", plan.Failure.Error()).
				Msg("pedido sin plan factible")
		} else {
			resp.PlannedCount++
		}
	}

	// IDs solicitados que no existen en el store → entradas fallidas
	if len(req.OrderIDs) > 0 {
		found := make(map[string]bool, len(orders))
		for _, o := range orders {
			found[o.ID] = true
		}
		for _, id := range req.OrderIDs {
			if !found[id] {
				resp.Orders = append(resp.Orders, dto.OrderPlanDTO{
					OrderID:       id,
					Status:        dto.OrderPlanStatusFailed,
					FailureReason: domain.ErrNotFound.Error(),
				})
				resp.FailedCount++
			}
		}
	}

	uc.log.Info().
		Str("plan_id", resp.PlanID).
		Int("planned", resp.PlannedCount).
		Int("failed", resp.FailedCount).
		Msg("plan de rakes generado")
	return resp, nil
}

// AnalyzeWagonUtilization asigna la cantidad dada sobre los vagones disponibles
// sin asociarla a un pedido (análisis de utilización del pool).
func (uc *PlanUseCase) AnalyzeWagonUtilization(ctx context.Context, quantity decimal.Decimal) (*dto.WagonAllocationDTO, error) {
	wagons, err := uc.wagonRepo.ListByStatus(ctx, entity.WagonStatusAvailable)
	if err != nil {
		return nil, err
	}
	alloc, err := rake.AllocateWagons(quantity, wagons)
	if err != nil {
		return nil, err
	}
	out := toAllocationDTO(alloc)
	return &out, nil
}

func (uc *PlanUseCase) toOrderPlanDTO(plan rake.OrderPlan) dto.OrderPlanDTO {
	out := dto.OrderPlanDTO{
		OrderID: plan.OrderID,
		Status:  dto.OrderPlanStatusPlanned,
	}
	if plan.Failed() {
		out.Status = dto.OrderPlanStatusFailed
		out.FailureReason = plan.Failure.Error()
		return out
	}
	rec := toRecommendationDTO(plan.Recommendation)
	out.Recommendation = &rec
	alloc := toAllocationDTO(plan.Allocation)
	out.Allocation = &alloc
	return out
}

func toRecommendationDTO(rec *rake.SourcingRecommendation) dto.SourcingRecommendationDTO {
	return dto.SourcingRecommendationDTO{
		StockyardID:    rec.StockyardID,
		StockyardName:  rec.StockyardName,
		DistanceKm:     rec.DistanceKm,
		TransitDays:    rec.TransitDays,
		AvgUtilization: rec.AvgUtilization,
		Cost: dto.CostBreakdownDTO{
			LoadingCost:   rec.Breakdown.LoadingCost,
			TransportCost: rec.Breakdown.TransportCost,
			DemurrageCost: rec.Breakdown.DemurrageCost,
			PenaltyCost:   rec.Breakdown.PenaltyCost,
			TotalCost:     rec.Breakdown.TotalCost,
		},
		BaselineCost:     rec.BaselineCost,
		EstimatedSavings: rec.EstimatedSavings,
		EfficiencyScore:  rec.EfficiencyScore,
	}
}

func toAllocationDTO(alloc *rake.WagonAllocationResult) dto.WagonAllocationDTO {
	out := dto.WagonAllocationDTO{
		Allocations:        make([]dto.WagonAllocationItemDTO, 0, len(alloc.Allocations)),
		WagonsUsed:         alloc.WagonsUsed,
		AverageUtilization: alloc.AverageUtilization,
		TotalQuantity:      alloc.TotalQuantity,
		RemainingQuantity:  alloc.RemainingQuantity,
	}
	for _, a := range alloc.Allocations {
		out.Allocations = append(out.Allocations, dto.WagonAllocationItemDTO{
			WagonID:        a.WagonID,
			WagonNumber:    a.WagonNumber,
			Capacity:       a.Capacity,
			AllocatedLoad:  a.AllocatedLoad,
			UtilizationPct: a.UtilizationPct,
			Full:           a.IsFull(),
		})
	}
	return out
}

func toDemurrageSummaryDTO(summary rake.DemurrageSummary) dto.DemurrageSummaryDTO {
	out := dto.DemurrageSummaryDTO{
		Alerts:             make([]dto.DemurrageAlertDTO, 0, len(summary.Alerts)),
		RakesLoading:       summary.RakesLoading,
		TotalDemurrageCost: summary.TotalCost,
	}
	for _, a := range summary.Alerts {
		out.Alerts = append(out.Alerts, dto.DemurrageAlertDTO{
			RakeID:       a.RakeID,
			RakeNumber:   a.RakeNumber,
			WagonCount:   a.WagonCount,
			ElapsedHours: a.ElapsedHours,
			AccruedCost:  a.AccruedCost,
			AlertLevel:   string(a.Level),
		})
	}
	return out
}
