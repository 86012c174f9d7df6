package rake_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/railops/rake-planner-api/internal/domain"
	"github.com/railops/rake-planner-api/internal/domain/costing"
	"github.com/railops/rake-planner-api/internal/domain/entity"
	"github.com/railops/rake-planner-api/internal/domain/rake"
)

func planInput() rake.PlanInput {
	feasible := testOrder()
	infeasible := testOrder()
	infeasible.ID = "ord-2"
	infeasible.MaterialID = "mat-limestone" // sin inventario en el snapshot

	return rake.PlanInput{
		Orders:      []*entity.Order{feasible, infeasible},
		Inventories: []*entity.InventoryRecord{inv("i1", "y1", "mat-coal", "5000")},
		Stockyards:  map[string]*entity.Stockyard{"y1": yard("y1", "Patio Norte", "norte")},
		LoadingPoints: map[string][]*entity.LoadingPoint{
			"y1": {point("y1", "0.5")},
		},
		Wagons: []*entity.Wagon{
			wagon("w1", "60"), wagon("w2", "60"), wagon("w3", "60"),
		},
		LoadingRakes: []*entity.RakeInProgress{loadingRake("r1", 10, 30*time.Hour)},
		Rates:        costing.DefaultRates(),
		Distance:     fixedDistance(map[string]string{"norte": "600"}),
		Now:          testNow,
	}
}

// La falla de un pedido no aborta el lote: el resto se planifica igual y la
// falla queda registrada en su entrada.
func TestBuildPlan_FallaIndividualNoAbortaElLote(t *testing.T) {
	got := rake.BuildPlan(planInput())

	require.Len(t, got.Orders, 2, "el plan debe tener una entrada por pedido")

	planned := got.Orders[0]
	assert.False(t, planned.Failed())
	require.NotNil(t, planned.Recommendation)
	assert.Equal(t, "y1", planned.Recommendation.StockyardID)
	require.NotNil(t, planned.Allocation)
	assert.Equal(t, 3, planned.Allocation.WagonsUsed)
	assert.True(t, planned.Allocation.RemainingQuantity.Equal(d("2820")),
		"3000 MT sobre 180 de pool deja 2820 sin asignar, obtuvo %s",
		planned.Allocation.RemainingQuantity)

	failed := got.Orders[1]
	assert.True(t, failed.Failed())
	assert.ErrorIs(t, failed.Failure, domain.ErrNoFeasibleSource)
	assert.Nil(t, failed.Recommendation)
	assert.Nil(t, failed.Allocation)
}

// El planificador no descuenta el pool entre pedidos: cada uno ve la misma vista.
func TestBuildPlan_CadaPedidoVeElPoolCompleto(t *testing.T) {
	first := testOrder()
	first.Quantity = d("60")
	second := testOrder()
	second.ID = "ord-2"
	second.Quantity = d("60")

	in := planInput()
	in.Orders = []*entity.Order{first, second}
	in.Wagons = []*entity.Wagon{wagon("w1", "60"), wagon("w2", "55")}

	got := rake.BuildPlan(in)
	require.Len(t, got.Orders, 2)

	for _, plan := range got.Orders {
		require.False(t, plan.Failed(), "pedido %s: %v", plan.OrderID, plan.Failure)
		require.Len(t, plan.Allocation.Allocations, 1)
		assert.Equal(t, "w1", plan.Allocation.Allocations[0].WagonID,
			"ambos pedidos deben asignarse contra el mismo pool sin descontar")
	}
}

func TestBuildPlan_IncluyeResumenDeDemora(t *testing.T) {
	got := rake.BuildPlan(planInput())

	assert.Equal(t, 1, got.Demurrage.RakesLoading)
	require.Len(t, got.Demurrage.Alerts, 1)
	assert.Equal(t, rake.AlertCritical, got.Demurrage.Alerts[0].Level)
	assert.True(t, got.Demurrage.TotalCost.Equal(d("600000")),
		"30 h * 2000 * 10 vagones, obtuvo %s", got.Demurrage.TotalCost)
}

func TestBuildPlan_LoteVacio(t *testing.T) {
	in := planInput()
	in.Orders = nil
	in.LoadingRakes = nil

	got := rake.BuildPlan(in)

	assert.Empty(t, got.Orders)
	assert.Equal(t, 0, got.Demurrage.RakesLoading)
	assert.True(t, got.Demurrage.TotalCost.IsZero())
}
