package costing

import (
	"github.com/shopspring/decimal"

	"github.com/railops/rake-planner-api/internal/domain"
)

// Modelo de costos del planificador de rakes (servicio de dominio, funciones puras).
// Las cuatro componentes son monótonas no decrecientes respecto de su insumo
// principal (cantidad, distancia, utilización, retraso): esa propiedad sostiene
// el desempate determinista del selector de fuentes.

var (
	one   = decimal.NewFromInt(1)
	three = decimal.NewFromInt(3)
)

// LoadingCost = cantidad * tarifa_por_unidad.
func LoadingCost(quantity, ratePerUnit decimal.Decimal) (decimal.Decimal, error) {
	if quantity.IsNegative() {
		return decimal.Zero, domain.ErrInvalidInput
	}
	return quantity.Mul(ratePerUnit), nil
}

// TransportCost = distancia_km * tarifa_km_vagón * cantidad / capacidad_vagón.
// La capacidad de vagón debe ser positiva (la división sería indefinida).
func TransportCost(distanceKm, ratePerKmWagon, quantity, wagonCapacity decimal.Decimal) (decimal.Decimal, error) {
	if quantity.IsNegative() || !distanceKm.GreaterThan(decimal.Zero) {
		return decimal.Zero, domain.ErrInvalidInput
	}
	if !wagonCapacity.GreaterThan(decimal.Zero) {
		return decimal.Zero, domain.ErrInvalidInput
	}
	return distanceKm.Mul(ratePerKmWagon).Mul(quantity).Div(wagonCapacity), nil
}

// DemurrageDays = max(1, utilización_promedio * 3).
// Piso de un día: aun con el punto de carga vacío el rake ocupa una jornada.
func DemurrageDays(avgUtilization decimal.Decimal) decimal.Decimal {
	days := avgUtilization.Mul(three)
	if days.LessThan(one) {
		return one
	}
	return days
}

// DemurrageCost = demurrage_days * tarifa_día_vagón * cantidad / capacidad_vagón.
func DemurrageCost(avgUtilization, ratePerDayWagon, quantity, wagonCapacity decimal.Decimal) (decimal.Decimal, error) {
	if quantity.IsNegative() {
		return decimal.Zero, domain.ErrInvalidInput
	}
	if !wagonCapacity.GreaterThan(decimal.Zero) {
		return decimal.Zero, domain.ErrInvalidInput
	}
	return DemurrageDays(avgUtilization).Mul(ratePerDayWagon).Mul(quantity).Div(wagonCapacity), nil
}

// PenaltyCost penaliza el incumplimiento del deadline: si los días totales
// (demora + tránsito) exceden los días restantes, cada día de exceso paga
// penalty_per_day; si no, la penalidad es cero.
func PenaltyCost(transitDays, demurrageDays decimal.Decimal, daysUntilDeadline int64, penaltyPerDay decimal.Decimal) decimal.Decimal {
	totalDays := demurrageDays.Add(transitDays)
	delay := totalDays.Sub(decimal.NewFromInt(daysUntilDeadline))
	if !delay.GreaterThan(decimal.Zero) {
		return decimal.Zero
	}
	return delay.Mul(penaltyPerDay)
}

// Breakdown desglose de costos de una alternativa de abastecimiento.
// Inmutable una vez calculado; TotalCost es la suma exacta de las cuatro componentes.
type Breakdown struct {
	LoadingCost   decimal.Decimal
	TransportCost decimal.Decimal
	DemurrageCost decimal.Decimal
	PenaltyCost   decimal.Decimal
	TotalCost     decimal.Decimal
}

// BreakdownInput insumos para calcular un desglose completo.
type BreakdownInput struct {
	Quantity          decimal.Decimal
	DistanceKm        decimal.Decimal
	AvgUtilization    decimal.Decimal
	TransitDays       decimal.Decimal
	DaysUntilDeadline int64
	PenaltyPerDay     decimal.Decimal
	Rates             Rates
}

// ComputeBreakdown arma el desglose completo aplicando las cuatro componentes.
func ComputeBreakdown(in BreakdownInput) (Breakdown, error) {
	loading, err := LoadingCost(in.Quantity, in.Rates.LoadingRatePerUnit)
	if err != nil {
		return Breakdown{}, err
	}
	transport, err := TransportCost(in.DistanceKm, in.Rates.TransportRatePerKmWagon, in.Quantity, in.Rates.NominalWagonCapacity)
	if err != nil {
		return Breakdown{}, err
	}
	demurrage, err := DemurrageCost(in.AvgUtilization, in.Rates.DemurrageRatePerDayWagon, in.Quantity, in.Rates.NominalWagonCapacity)
	if err != nil {
		return Breakdown{}, err
	}
	penalty := PenaltyCost(in.TransitDays, DemurrageDays(in.AvgUtilization), in.DaysUntilDeadline, in.PenaltyPerDay)

	return Breakdown{
		LoadingCost:   loading,
		TransportCost: transport,
		DemurrageCost: demurrage,
		PenaltyCost:   penalty,
		TotalCost:     loading.Add(transport).Add(demurrage).Add(penalty),
	}, nil
}
