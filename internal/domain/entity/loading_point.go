package entity

import "github.com/shopspring/decimal"

// LoadingPoint representa un punto de carga asociado a un stockyard.
// CurrentUtilization es la fracción de ocupación en [0,1] informada por el
// sistema de operaciones; alimenta el cálculo de demora del modelo de costos.
type LoadingPoint struct {
	ID                 string
	Name               string
	StockyardID        string
	Capacity           decimal.Decimal
	CurrentUtilization decimal.Decimal
}
