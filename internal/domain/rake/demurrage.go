package rake

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/railops/rake-planner-api/internal/domain/entity"
)

// AlertLevel severidad de demora derivada del tiempo en estado de cargue.
// La clasificación es de solo lectura y se recalcula en cada consulta: no hay
// historial de transiciones almacenado.
type AlertLevel string

const (
	AlertNone     AlertLevel = "none"     // < 12 h
	AlertWarning  AlertLevel = "warning"  // 12–24 h
	AlertCritical AlertLevel = "critical" // 24–48 h
	AlertSevere   AlertLevel = "severe"   // > 48 h
)

// AlertCutoffHours horas mínimas de cargue para emitir alerta. Por debajo no
// se alerta: es un corte deliberado de ruido, no un estado de error.
const AlertCutoffHours = 12

var (
	sixty        = decimal.NewFromInt(60)
	cutoffHours  = decimal.NewFromInt(AlertCutoffHours)
	warningUpper = decimal.NewFromInt(24)
	severeLower  = decimal.NewFromInt(48)
)

// DemurrageAlert alerta de demora para un rake en cargue.
type DemurrageAlert struct {
	RakeID       string
	RakeNumber   string
	WagonCount   int
	ElapsedHours decimal.Decimal
	AccruedCost  decimal.Decimal
	Level        AlertLevel
}

// DemurrageSummary alertas activas y costo de demora acumulado de todos los
// rakes actualmente en cargue (incluidos los que aún no superan el corte).
type DemurrageSummary struct {
	Alerts       []DemurrageAlert
	RakesLoading int
	TotalCost    decimal.Decimal
}

// ClassifyDwell clasifica las horas de permanencia en cargue.
func ClassifyDwell(elapsedHours decimal.Decimal) AlertLevel {
	switch {
	case elapsedHours.LessThan(cutoffHours):
		return AlertNone
	case elapsedHours.LessThan(warningUpper):
		return AlertWarning
	case elapsedHours.LessThanOrEqual(severeLower):
		return AlertCritical
	default:
		return AlertSevere
	}
}

// EstimateDemurrage recorre los rakes en estado loading, calcula horas
// transcurridas desde la formación y el costo acumulado
// (horas * tarifa_hora_vagón * cantidad_vagones), y emite alerta para los que
// superan el corte de 12 horas. Función pura sobre el snapshot y el reloj dado.
func EstimateDemurrage(rakes []*entity.RakeInProgress, ratePerHourWagon decimal.Decimal, now time.Time) DemurrageSummary {
	summary := DemurrageSummary{TotalCost: decimal.Zero}
	for _, r := range rakes {
		if r.Status != entity.RakeStatusLoading {
			continue
		}
		summary.RakesLoading++

		// Minutos enteros → horas decimales, para un resultado bit-idéntico
		// entre consultas con el mismo snapshot y el mismo instante.
		minutes := int64(now.Sub(r.FormationDate) / time.Minute)
		if minutes < 0 {
			minutes = 0
		}
		hours := decimal.NewFromInt(minutes).Div(sixty)
		accrued := hours.Mul(ratePerHourWagon).Mul(decimal.NewFromInt(int64(r.WagonCount())))
		summary.TotalCost = summary.TotalCost.Add(accrued)

		level := ClassifyDwell(hours)
		if level == AlertNone {
			continue
		}
		summary.Alerts = append(summary.Alerts, DemurrageAlert{
			RakeID:       r.ID,
			RakeNumber:   r.RakeNumber,
			WagonCount:   r.WagonCount(),
			ElapsedHours: hours,
			AccruedCost:  accrued,
			Level:        level,
		})
	}
	return summary
}
