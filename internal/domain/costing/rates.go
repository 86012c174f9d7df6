package costing

import (
	"github.com/shopspring/decimal"

	"github.com/railops/rake-planner-api/internal/domain"
)

// Rates agrupa las tarifas del modelo de costos. Los valores por defecto
// replican el tarifario de referencia de la operación (BOXN de 60 MT como
// capacidad nominal); en producción se cargan desde configuración.
type Rates struct {
	LoadingRatePerUnit        decimal.Decimal // costo de cargue por unidad (MT)
	TransportRatePerKmWagon   decimal.Decimal // flete por km por vagón
	DemurrageRatePerDayWagon  decimal.Decimal // demora por día por vagón
	DemurrageRatePerHourWagon decimal.Decimal // demora por hora por vagón (rakes en cargue)
	NominalWagonCapacity      decimal.Decimal // capacidad nominal de vagón para prorrateos
}

// DefaultRates devuelve el tarifario por defecto.
func DefaultRates() Rates {
	return Rates{
		LoadingRatePerUnit:        decimal.NewFromInt(5),
		TransportRatePerKmWagon:   decimal.NewFromInt(45),
		DemurrageRatePerDayWagon:  decimal.NewFromInt(5000),
		DemurrageRatePerHourWagon: decimal.NewFromInt(2000),
		NominalWagonCapacity:      decimal.NewFromInt(60),
	}
}

// Validate verifica que las tarifas permitan calcular sin divisiones indefinidas.
func (r Rates) Validate() error {
	if !r.NominalWagonCapacity.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	return nil
}
