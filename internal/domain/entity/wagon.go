package entity

import "github.com/shopspring/decimal"

// Estados de vagón.
const (
	WagonStatusAvailable   = "available"
	WagonStatusLoaded      = "loaded"
	WagonStatusInTransit   = "in_transit"
	WagonStatusMaintenance = "maintenance"
)

// Wagon representa un vagón físico del pool.
type Wagon struct {
	ID          string
	WagonNumber string
	Type        string // BOXN, BRN, BCN...
	Capacity    decimal.Decimal // > 0, en unidades del material (MT)
	Status      string
}
