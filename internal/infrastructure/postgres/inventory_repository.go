package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/railops/rake-planner-api/internal/domain/entity"
	"github.com/railops/rake-planner-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo lecturas de snapshots de inventario sobre PostgreSQL.
type InventoryRepo struct {
	pool *pgxpool.Pool
}

// NewInventoryRepository construye el adaptador de lectura de inventario.
func NewInventoryRepository(pool *pgxpool.Pool) *InventoryRepo {
	return &InventoryRepo{pool: pool}
}

// ListByMaterials devuelve el inventario disponible de los materiales dados.
// El orden por fecha de creación fija el orden de entrada del selector
// (y con él el desempate ante costos iguales).
func (r *InventoryRepo) ListByMaterials(ctx context.Context, materialIDs []string) ([]*entity.InventoryRecord, error) {
	if len(materialIDs) == 0 {
		return nil, nil
	}
	query := `
		SELECT id, stockyard_id, material_id, quantity, cost_per_unit, updated_at
		FROM inventory WHERE material_id = ANY($1) ORDER BY created_at ASC`
	rows, err := r.pool.Query(ctx, query, materialIDs)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryRecord
	for rows.Next() {
		var inv entity.InventoryRecord
		if err := rows.Scan(&inv.ID, &inv.StockyardID, &inv.MaterialID, &inv.Quantity, &inv.CostPerUnit, &inv.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}
