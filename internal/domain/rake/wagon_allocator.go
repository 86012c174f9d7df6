package rake

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/railops/rake-planner-api/internal/domain"
	"github.com/railops/rake-planner-api/internal/domain/entity"
)

// FullWagonThresholdPct umbral de política para considerar un vagón "lleno".
// No es exactamente 100 para tolerar redondeos de báscula.
var FullWagonThresholdPct = decimal.NewFromInt(95)

// WagonAllocation asignación de carga a un vagón concreto.
type WagonAllocation struct {
	WagonID        string
	WagonNumber    string
	Capacity       decimal.Decimal
	AllocatedLoad  decimal.Decimal
	UtilizationPct decimal.Decimal
}

// IsFull indica si el vagón quedó cargado por encima del umbral de llenado.
func (a WagonAllocation) IsFull() bool {
	return a.UtilizationPct.GreaterThanOrEqual(FullWagonThresholdPct)
}

// WagonAllocationResult resultado de la asignación greedy de vagones.
// Invariante: sum(AllocatedLoad) + RemainingQuantity == TotalQuantity.
// RemainingQuantity > 0 señala capacidad insuficiente del pool; es un resultado
// parcial que el caller debe verificar, no un error.
type WagonAllocationResult struct {
	Allocations        []WagonAllocation
	WagonsUsed         int
	AverageUtilization decimal.Decimal
	TotalQuantity      decimal.Decimal
	RemainingQuantity  decimal.Decimal
}

// AllocateWagons asigna la cantidad demandada sobre el pool de vagones con
// first-fit-descending: orden estable por capacidad descendente y cargue de
// min(capacidad, restante) en cada vagón hasta agotar demanda o pool. El orden
// descendente minimiza la cantidad de vagones usados y los cargues parciales.
//
// No muta el estado de los vagones: confirmar la asignación y descontar el pool
// pertenece al workflow de despacho externo.
func AllocateWagons(totalQuantity decimal.Decimal, wagons []*entity.Wagon) (*WagonAllocationResult, error) {
	if !totalQuantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	for _, w := range wagons {
		if !w.Capacity.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	}

	pool := make([]*entity.Wagon, len(wagons))
	copy(pool, wagons)
	// Orden estable: empates de capacidad conservan el orden relativo de entrada.
	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].Capacity.GreaterThan(pool[j].Capacity)
	})

	result := &WagonAllocationResult{
		TotalQuantity:     totalQuantity,
		RemainingQuantity: totalQuantity,
	}
	utilizationSum := decimal.Zero
	for _, w := range pool {
		if !result.RemainingQuantity.GreaterThan(decimal.Zero) {
			break
		}
		load := w.Capacity
		if result.RemainingQuantity.LessThan(load) {
			load = result.RemainingQuantity
		}
		utilization := load.Div(w.Capacity).Mul(hundred)
		result.Allocations = append(result.Allocations, WagonAllocation{
			WagonID:        w.ID,
			WagonNumber:    w.WagonNumber,
			Capacity:       w.Capacity,
			AllocatedLoad:  load,
			UtilizationPct: utilization,
		})
		utilizationSum = utilizationSum.Add(utilization)
		result.RemainingQuantity = result.RemainingQuantity.Sub(load)
	}

	result.WagonsUsed = len(result.Allocations)
	if result.WagonsUsed > 0 {
		result.AverageUtilization = utilizationSum.Div(decimal.NewFromInt(int64(result.WagonsUsed)))
	}
	return result, nil
}
