package rake

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/railops/rake-planner-api/internal/domain"
	"github.com/railops/rake-planner-api/internal/domain/costing"
	"github.com/railops/rake-planner-api/internal/domain/entity"
)

// defaultUtilization se asume cuando un stockyard no tiene puntos de carga en
// el snapshot. Es un default explícito (ocupación media), no un error de datos.
var defaultUtilization = decimal.NewFromFloat(0.5)

var (
	hundred        = decimal.NewFromInt(100)
	baselineMarkup = decimal.NewFromFloat(1.3)
	maxEfficiency  = decimal.NewFromInt(95)
)

// SourcingRecommendation recomendación de abastecimiento para un pedido:
// el stockyard de mínimo costo total con su desglose y el ahorro estimado
// frente a un baseline con margen del 30 %. Objeto derivado e inmutable.
type SourcingRecommendation struct {
	OrderID          string
	StockyardID      string
	StockyardName    string
	DistanceKm       decimal.Decimal
	TransitDays      decimal.Decimal
	AvgUtilization   decimal.Decimal
	Breakdown        costing.Breakdown
	BaselineCost     decimal.Decimal
	EstimatedSavings decimal.Decimal
	EfficiencyScore  decimal.Decimal
}

// SelectSource elige, entre los inventarios candidatos, el stockyard que
// minimiza el costo total (cargue + flete + demora + penalidad) para el pedido.
//
// Solo son candidatos los inventarios del material del pedido con cantidad
// suficiente; si ninguno alcanza devuelve ErrNoFeasibleSource (el caller decide
// si espera reposición o fracciona el pedido, fuera del alcance del núcleo).
// Ante empate exacto de costo total gana el primero en el orden de entrada
// (desempate estable y reproducible). Función pura sobre snapshots.
func SelectSource(
	order *entity.Order,
	inventories []*entity.InventoryRecord,
	stockyards map[string]*entity.Stockyard,
	loadingPoints map[string][]*entity.LoadingPoint,
	rates costing.Rates,
	distance costing.DistanceFunc,
	now time.Time,
) (*SourcingRecommendation, error) {
	if err := order.Validate(); err != nil {
		return nil, err
	}
	if err := rates.Validate(); err != nil {
		return nil, err
	}
	if distance == nil {
		distance = costing.SyntheticDistance
	}

	daysUntilDeadline := order.DaysUntilDeadline(now)

	var best *SourcingRecommendation
	for _, inv := range inventories {
		if inv.MaterialID != order.MaterialID {
			continue
		}
		if inv.Quantity.LessThan(order.Quantity) {
			continue
		}
		yard, ok := stockyards[inv.StockyardID]
		if !ok {
			// Integridad referencial rota en el store externo: se reporta, no se adivina.
			return nil, domain.ErrMissingReference
		}

		avgUtil := averageUtilization(loadingPoints[yard.ID])
		km := distance(yard.Location, order.Destination)
		transitDays := costing.TransitDays(km)

		breakdown, err := costing.ComputeBreakdown(costing.BreakdownInput{
			Quantity:          order.Quantity,
			DistanceKm:        km,
			AvgUtilization:    avgUtil,
			TransitDays:       transitDays,
			DaysUntilDeadline: daysUntilDeadline,
			PenaltyPerDay:     order.PenaltyPerDay,
			Rates:             rates,
		})
		if err != nil {
			return nil, err
		}

		if best == nil || breakdown.TotalCost.LessThan(best.Breakdown.TotalCost) {
			best = &SourcingRecommendation{
				OrderID:        order.ID,
				StockyardID:    yard.ID,
				StockyardName:  yard.Name,
				DistanceKm:     km,
				TransitDays:    transitDays,
				AvgUtilization: avgUtil,
				Breakdown:      breakdown,
			}
		}
	}
	if best == nil {
		return nil, domain.ErrNoFeasibleSource
	}

	// Valores de presentación; no participan de la decisión.
	best.BaselineCost = best.Breakdown.TotalCost.Mul(baselineMarkup)
	best.EstimatedSavings = best.BaselineCost.Sub(best.Breakdown.TotalCost)
	if best.BaselineCost.GreaterThan(decimal.Zero) {
		score := best.EstimatedSavings.Div(best.BaselineCost).Mul(hundred)
		if score.GreaterThan(maxEfficiency) {
			score = maxEfficiency
		}
		best.EfficiencyScore = score
	}
	return best, nil
}

// averageUtilization promedia la ocupación de los puntos de carga del stockyard;
// sin puntos de carga aplica el default documentado de 0.5.
func averageUtilization(points []*entity.LoadingPoint) decimal.Decimal {
	if len(points) == 0 {
		return defaultUtilization
	}
	sum := decimal.Zero
	for _, lp := range points {
		sum = sum.Add(lp.CurrentUtilization)
	}
	return sum.Div(decimal.NewFromInt(int64(len(points))))
}
