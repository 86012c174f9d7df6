package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/railops/rake-planner-api/internal/domain"
)

// Prioridades de pedido.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Estados de pedido. El deadline es inmutable una vez el pedido sale de pending.
const (
	OrderStatusPending   = "pending"
	OrderStatusAssigned  = "assigned"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
)

// Order representa un pedido de transporte ferroviario de carga.
type Order struct {
	ID            string
	CustomerName  string
	MaterialID    string
	Quantity      decimal.Decimal // > 0
	Destination   string
	Priority      string
	Deadline      time.Time
	PenaltyPerDay decimal.Decimal // >= 0
	Status        string
	CreatedAt     time.Time
}

// Validate verifica los invariantes mínimos para que el pedido sea planificable:
// cantidad positiva, material referenciado, deadline definido y penalidad no negativa.
func (o *Order) Validate() error {
	if o == nil {
		return domain.ErrInvalidInput
	}
	if o.MaterialID == "" || o.Deadline.IsZero() {
		return domain.ErrInvalidInput
	}
	if !o.Quantity.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	if o.PenaltyPerDay.IsNegative() {
		return domain.ErrInvalidInput
	}
	return nil
}

// DaysUntilDeadline devuelve los días completos que faltan hasta el deadline
// (negativo si ya venció), con truncamiento hacia abajo como timedelta.days.
func (o *Order) DaysUntilDeadline(now time.Time) int64 {
	hours := o.Deadline.Sub(now).Hours()
	days := int64(hours / 24)
	if hours < 0 && hours/24 != float64(days) {
		days--
	}
	return days
}
