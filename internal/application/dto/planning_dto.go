package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlanRakesRequest cuerpo de POST /api/planning/rakes.
// Sin order_ids se planifican todos los pedidos pendientes.
type PlanRakesRequest struct {
	OrderIDs []string `json:"order_ids"`
}

// CostBreakdownDTO desglose de costos de una recomendación.
type CostBreakdownDTO struct {
	LoadingCost   decimal.Decimal `json:"loading_cost"`
	TransportCost decimal.Decimal `json:"transport_cost"`
	DemurrageCost decimal.Decimal `json:"demurrage_cost"`
	PenaltyCost   decimal.Decimal `json:"penalty_cost"`
	TotalCost     decimal.Decimal `json:"total_cost"`
}

// SourcingRecommendationDTO fuente elegida para un pedido con su desglose
// y el ahorro estimado frente al baseline (valores de presentación).
type SourcingRecommendationDTO struct {
	StockyardID      string           `json:"stockyard_id"`
	StockyardName    string           `json:"stockyard_name"`
	DistanceKm       decimal.Decimal  `json:"distance_km"`
	TransitDays      decimal.Decimal  `json:"transit_days"`
	AvgUtilization   decimal.Decimal  `json:"avg_loading_point_utilization"`
	Cost             CostBreakdownDTO `json:"cost"`
	BaselineCost     decimal.Decimal  `json:"baseline_cost"`
	EstimatedSavings decimal.Decimal  `json:"estimated_savings"`
	EfficiencyScore  decimal.Decimal  `json:"efficiency_score"`
}

// WagonAllocationItemDTO carga asignada a un vagón.
type WagonAllocationItemDTO struct {
	WagonID        string          `json:"wagon_id"`
	WagonNumber    string          `json:"wagon_number"`
	Capacity       decimal.Decimal `json:"capacity"`
	AllocatedLoad  decimal.Decimal `json:"allocated_load"`
	UtilizationPct decimal.Decimal `json:"utilization_pct"`
	Full           bool            `json:"full"`
}

// WagonAllocationDTO resultado de la asignación greedy.
// remaining_quantity > 0 indica capacidad insuficiente del pool; el caller
// debe verificarlo explícitamente.
type WagonAllocationDTO struct {
	Allocations        []WagonAllocationItemDTO `json:"allocations"`
	WagonsUsed         int                      `json:"wagons_used"`
	AverageUtilization decimal.Decimal          `json:"average_utilization"`
	TotalQuantity      decimal.Decimal          `json:"total_quantity"`
	RemainingQuantity  decimal.Decimal          `json:"remaining_quantity"`
}

// Estado por pedido dentro del plan.
const (
	OrderPlanStatusPlanned = "planned"
	OrderPlanStatusFailed  = "failed"
)

// OrderPlanDTO resultado por pedido. Un pedido infactible queda en failed con
// su razón sin abortar el resto del lote.
type OrderPlanDTO struct {
	OrderID        string                     `json:"order_id"`
	Status         string                     `json:"status"`
	FailureReason  string                     `json:"failure_reason,omitempty"`
	Recommendation *SourcingRecommendationDTO `json:"recommendation,omitempty"`
	Allocation     *WagonAllocationDTO        `json:"allocation,omitempty"`
}

// DemurrageAlertDTO alerta de demora para un rake en cargue (>= 12 h).
type DemurrageAlertDTO struct {
	RakeID       string          `json:"rake_id"`
	RakeNumber   string          `json:"rake_number"`
	WagonCount   int             `json:"wagon_count"`
	ElapsedHours decimal.Decimal `json:"elapsed_hours"`
	AccruedCost  decimal.Decimal `json:"accrued_cost"`
	AlertLevel   string          `json:"alert_level"`
}

// DemurrageSummaryDTO resumen de demora adjunto al plan.
type DemurrageSummaryDTO struct {
	Alerts             []DemurrageAlertDTO `json:"alerts"`
	RakesLoading       int                 `json:"rakes_loading"`
	TotalDemurrageCost decimal.Decimal     `json:"total_demurrage_cost"`
}

// PlanRakesResponse respuesta de POST /api/planning/rakes.
type PlanRakesResponse struct {
	PlanID       string              `json:"plan_id"`
	GeneratedAt  time.Time           `json:"generated_at"`
	Orders       []OrderPlanDTO      `json:"orders"`
	PlannedCount int                 `json:"planned_count"`
	FailedCount  int                 `json:"failed_count"`
	Demurrage    DemurrageSummaryDTO `json:"demurrage"`
}

// AllocateWagonsRequest cuerpo de POST /api/planning/wagons/allocate.
type AllocateWagonsRequest struct {
	Quantity decimal.Decimal `json:"quantity"`
}

// DemurrageTotalDTO respuesta de GET /api/demurrage/total-cost.
type DemurrageTotalDTO struct {
	RakesLoading       int             `json:"rakes_loading"`
	TotalDemurrageCost decimal.Decimal `json:"total_demurrage_cost"`
}
