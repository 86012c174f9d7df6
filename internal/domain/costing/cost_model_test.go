package costing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/railops/rake-planner-api/internal/domain"
	"github.com/railops/rake-planner-api/internal/domain/costing"
)

// ──────────────────────────────────────────────────────────────────────────────
// Vectores exactos del modelo de costos. Son el "canario en la mina" del
// planificador: si alguien altera una fórmula o el orden de las operaciones
// decimales, estos tests fallan de inmediato.
// ──────────────────────────────────────────────────────────────────────────────

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestLoadingCost_VectorExacto(t *testing.T) {
	got, err := costing.LoadingCost(d("5000"), d("5"))
	require.NoError(t, err)
	assert.True(t, got.Equal(d("25000")),
		"5000 MT a tarifa 5 debe costar 25000, obtuvo %s", got)
}

func TestTransportCost_VectorExacto(t *testing.T) {
	// 1000 km * 45/km/vagón * 5000 MT / 60 MT por vagón
	got, err := costing.TransportCost(d("1000"), d("45"), d("5000"), d("60"))
	require.NoError(t, err)
	assert.True(t, got.Equal(d("3750000")),
		"flete esperado 3750000, obtuvo %s", got)
}

func TestDemurrageDays_PisoDeUnDia(t *testing.T) {
	assert.True(t, costing.DemurrageDays(d("0.5")).Equal(d("1.5")),
		"utilización 0.5 debe dar 1.5 días")
	assert.True(t, costing.DemurrageDays(d("0.2")).Equal(d("1")),
		"utilización 0.2 queda bajo el piso de 1 día")
	assert.True(t, costing.DemurrageDays(decimal.Zero).Equal(d("1")),
		"sin congestión el piso sigue siendo 1 día")
	assert.True(t, costing.DemurrageDays(d("1")).Equal(d("3")),
		"utilización 1.0 debe dar 3 días")
}

func TestDemurrageCost_VectorExacto(t *testing.T) {
	// days = 1.5; 1.5 * 5000/día/vagón * 3000 MT / 60 MT por vagón
	got, err := costing.DemurrageCost(d("0.5"), d("5000"), d("3000"), d("60"))
	require.NoError(t, err)
	assert.True(t, got.Equal(d("375000")),
		"demora esperada 375000, obtuvo %s", got)
}

// Escenario de la operación: deadline a 2 días, tránsito estimado 3, demora 1
// → total 4 días, 2 de retraso, penalidad 2 * penalty_per_day.
func TestPenaltyCost_RetrasoDeDosDias(t *testing.T) {
	got := costing.PenaltyCost(d("3"), d("1"), 2, d("10000"))
	assert.True(t, got.Equal(d("20000")),
		"penalidad esperada 20000, obtuvo %s", got)
}

func TestPenaltyCost_DentroDelDeadlineEsCero(t *testing.T) {
	got := costing.PenaltyCost(d("1"), d("1"), 5, d("10000"))
	assert.True(t, got.IsZero(), "sin retraso la penalidad debe ser cero")
}

func TestPenaltyCost_DeadlineVencidoAcumulaDesdeElExceso(t *testing.T) {
	// deadline ya vencido (días restantes negativos)
	got := costing.PenaltyCost(d("1"), d("1"), -1, d("1000"))
	assert.True(t, got.Equal(d("3000")),
		"con deadline vencido el exceso es total_days - (-1), obtuvo %s", got)
}

// ── Errores de entrada ────────────────────────────────────────────────────────

func TestLoadingCost_ErrorSiCantidadNegativa(t *testing.T) {
	_, err := costing.LoadingCost(d("-1"), d("5"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTransportCost_ErrorSiDistanciaCero(t *testing.T) {
	_, err := costing.TransportCost(decimal.Zero, d("45"), d("100"), d("60"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTransportCost_ErrorSiCapacidadNoPositiva(t *testing.T) {
	_, err := costing.TransportCost(d("500"), d("45"), d("100"), decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDemurrageCost_ErrorSiCapacidadNoPositiva(t *testing.T) {
	_, err := costing.DemurrageCost(d("0.5"), d("5000"), d("100"), d("-60"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ── Monotonicidad ─────────────────────────────────────────────────────────────
// Cada componente nunca decrece al crecer su insumo principal; el desempate
// determinista del selector depende de esta propiedad.

func TestLoadingCost_MonotonoEnCantidad(t *testing.T) {
	prev := decimal.Zero
	for _, qty := range []string{"10", "100", "1000", "10000"} {
		got, err := costing.LoadingCost(d(qty), d("5"))
		require.NoError(t, err)
		assert.True(t, got.GreaterThanOrEqual(prev),
			"el costo de cargue no puede decrecer al crecer la cantidad")
		prev = got
	}
}

func TestTransportCost_MonotonoEnDistancia(t *testing.T) {
	prev := decimal.Zero
	for _, km := range []string{"200", "500", "1200", "2199"} {
		got, err := costing.TransportCost(d(km), d("45"), d("3000"), d("60"))
		require.NoError(t, err)
		assert.True(t, got.GreaterThanOrEqual(prev),
			"el flete no puede decrecer al crecer la distancia")
		prev = got
	}
}

func TestDemurrageCost_MonotonoEnUtilizacion(t *testing.T) {
	prev := decimal.Zero
	for _, util := range []string{"0", "0.2", "0.5", "0.8", "1"} {
		got, err := costing.DemurrageCost(d(util), d("5000"), d("3000"), d("60"))
		require.NoError(t, err)
		assert.True(t, got.GreaterThanOrEqual(prev),
			"la demora no puede decrecer al crecer la utilización")
		prev = got
	}
}

func TestPenaltyCost_MonotonoEnTarifaPenalidad(t *testing.T) {
	prev := decimal.Zero
	for _, rate := range []string{"0", "1000", "5000", "20000"} {
		got := costing.PenaltyCost(d("3"), d("1.5"), 2, d(rate))
		assert.True(t, got.GreaterThanOrEqual(prev),
			"la penalidad no puede decrecer al crecer penalty_per_day")
		prev = got
	}
}

// ── Desglose completo ─────────────────────────────────────────────────────────

func breakdownInput() costing.BreakdownInput {
	return costing.BreakdownInput{
		Quantity:          d("3000"),
		DistanceKm:        d("600"),
		AvgUtilization:    d("0.5"),
		TransitDays:       d("2"),
		DaysUntilDeadline: 2,
		PenaltyPerDay:     d("10000"),
		Rates:             costing.DefaultRates(),
	}
}

func TestComputeBreakdown_VectorExacto(t *testing.T) {
	got, err := costing.ComputeBreakdown(breakdownInput())
	require.NoError(t, err)

	assert.True(t, got.LoadingCost.Equal(d("15000")), "cargue: %s", got.LoadingCost)
	assert.True(t, got.TransportCost.Equal(d("1350000")), "flete: %s", got.TransportCost)
	assert.True(t, got.DemurrageCost.Equal(d("375000")), "demora: %s", got.DemurrageCost)
	assert.True(t, got.PenaltyCost.Equal(d("15000")), "penalidad: %s", got.PenaltyCost)
	assert.True(t, got.TotalCost.Equal(d("1755000")), "total: %s", got.TotalCost)
}

func TestComputeBreakdown_TotalEsLaSumaDeLasCuatroComponentes(t *testing.T) {
	got, err := costing.ComputeBreakdown(breakdownInput())
	require.NoError(t, err)
	sum := got.LoadingCost.Add(got.TransportCost).Add(got.DemurrageCost).Add(got.PenaltyCost)
	assert.True(t, got.TotalCost.Equal(sum),
		"TotalCost debe ser exactamente la suma de las componentes")
}

// Dos llamadas con el mismo input producen desgloses bit-idénticos.
func TestComputeBreakdown_Determinista(t *testing.T) {
	first, err1 := costing.ComputeBreakdown(breakdownInput())
	second, err2 := costing.ComputeBreakdown(breakdownInput())
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first.TotalCost.String(), second.TotalCost.String(),
		"el mismo input siempre debe producir el mismo total")
	assert.Equal(t, first, second, "el desglose completo debe ser idéntico")
}
