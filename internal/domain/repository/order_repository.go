package repository

import (
	"context"

	"github.com/railops/rake-planner-api/internal/domain/entity"
)

// OrderRepository puerto de lectura de pedidos para planificación.
// Las implementaciones son read-only: el núcleo nunca muta pedidos.
type OrderRepository interface {
	// ListPending devuelve los pedidos pendientes ordenados por deadline ascendente.
	ListPending(ctx context.Context) ([]*entity.Order, error)
	// GetByIDs devuelve los pedidos existentes entre los IDs dados (los ausentes se omiten).
	GetByIDs(ctx context.Context, ids []string) ([]*entity.Order, error)
}
