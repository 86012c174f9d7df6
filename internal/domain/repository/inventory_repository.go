package repository

import (
	"context"

	"github.com/railops/rake-planner-api/internal/domain/entity"
)

// InventoryRepository puerto de lectura de snapshots de inventario por stockyard.
type InventoryRepository interface {
	// ListByMaterials devuelve el inventario disponible de los materiales dados.
	ListByMaterials(ctx context.Context, materialIDs []string) ([]*entity.InventoryRecord, error)
}
