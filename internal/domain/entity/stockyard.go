package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stockyard representa un patio de acopio desde donde se despacha material.
// Location es la etiqueta de ubicación usada como origen en el cálculo de distancia.
type Stockyard struct {
	ID        string
	Name      string
	Location  string
	Capacity  decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
