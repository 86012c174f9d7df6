package planning_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/railops/rake-planner-api/internal/application/planning"
	"github.com/railops/rake-planner-api/internal/domain/entity"
)

func demurrageFixture() *fakeRakes {
	now := time.Now().UTC()
	return &fakeRakes{rakes: []*entity.RakeInProgress{
		{
			ID: "r1", RakeNumber: "RK-001",
			WagonIDs: make([]string, 10),
			Status:   entity.RakeStatusLoading, FormationDate: now.Add(-30 * time.Hour),
		},
		{
			ID: "r2", RakeNumber: "RK-002",
			WagonIDs: make([]string, 5),
			Status:   entity.RakeStatusLoading, FormationDate: now.Add(-6 * time.Hour),
		},
		{
			ID: "r3", RakeNumber: "RK-003",
			WagonIDs: make([]string, 8),
			Status:   entity.RakeStatusInTransit, FormationDate: now.Add(-60 * time.Hour),
		},
	}}
}

func TestActiveAlerts_SoloRakesSobreElCorte(t *testing.T) {
	uc := planning.NewDemurrageUseCase(demurrageFixture(), d("2000"))

	got, err := uc.ActiveAlerts(context.Background())
	require.NoError(t, err)

	require.Len(t, got, 1, "solo RK-001 supera las 12 h en cargue")
	assert.Equal(t, "RK-001", got[0].RakeNumber)
	assert.Equal(t, 10, got[0].WagonCount)
	assert.Equal(t, "critical", got[0].AlertLevel)
	assert.True(t, got[0].AccruedCost.GreaterThanOrEqual(d("600000")),
		"30 h * 2000 * 10 vagones acumula al menos 600000, obtuvo %s", got[0].AccruedCost)
}

func TestTotalCost_SumaTodosLosRakesEnCargue(t *testing.T) {
	uc := planning.NewDemurrageUseCase(demurrageFixture(), d("2000"))

	got, err := uc.TotalCost(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, got.RakesLoading, "RK-003 está en tránsito y no cuenta")
	// RK-001 ≈ 600000 y RK-002 ≈ 60000; el total incluye al que no alerta.
	assert.True(t, got.TotalDemurrageCost.GreaterThanOrEqual(d("660000")),
		"total esperado al menos 660000, obtuvo %s", got.TotalDemurrageCost)
}

func TestTotalCost_SinRakesEnCargue(t *testing.T) {
	uc := planning.NewDemurrageUseCase(&fakeRakes{}, d("2000"))

	got, err := uc.TotalCost(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, got.RakesLoading)
	assert.True(t, got.TotalDemurrageCost.Equal(decimal.Zero))
}
