package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryRecord representa el inventario disponible de un material en un stockyard.
// El núcleo de planificación lo recibe como snapshot inmutable; las mutaciones
// (despachos, reposiciones) pertenecen al workflow externo.
type InventoryRecord struct {
	ID          string
	StockyardID string
	MaterialID  string
	Quantity    decimal.Decimal // >= 0
	CostPerUnit decimal.Decimal
	UpdatedAt   time.Time
}
