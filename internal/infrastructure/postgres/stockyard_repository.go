package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/railops/rake-planner-api/internal/domain/entity"
	"github.com/railops/rake-planner-api/internal/domain/repository"
)

var (
	_ repository.StockyardRepository    = (*StockyardRepo)(nil)
	_ repository.LoadingPointRepository = (*LoadingPointRepo)(nil)
)

// StockyardRepo lecturas de stockyards sobre PostgreSQL.
type StockyardRepo struct {
	pool *pgxpool.Pool
}

// NewStockyardRepository construye el adaptador de lectura de stockyards.
func NewStockyardRepository(pool *pgxpool.Pool) *StockyardRepo {
	return &StockyardRepo{pool: pool}
}

// ListAll devuelve todos los stockyards.
func (r *StockyardRepo) ListAll(ctx context.Context) ([]*entity.Stockyard, error) {
	query := `
		SELECT id, name, location, capacity, created_at, updated_at
		FROM stockyards ORDER BY name ASC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list stockyards: %w", err)
	}
	defer rows.Close()
	var list []*entity.Stockyard
	for rows.Next() {
		var s entity.Stockyard
		if err := rows.Scan(&s.ID, &s.Name, &s.Location, &s.Capacity, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stockyard: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// LoadingPointRepo lecturas de puntos de carga sobre PostgreSQL.
type LoadingPointRepo struct {
	pool *pgxpool.Pool
}

// NewLoadingPointRepository construye el adaptador de lectura de puntos de carga.
func NewLoadingPointRepository(pool *pgxpool.Pool) *LoadingPointRepo {
	return &LoadingPointRepo{pool: pool}
}

// ListAll devuelve todos los puntos de carga con su utilización actual.
func (r *LoadingPointRepo) ListAll(ctx context.Context) ([]*entity.LoadingPoint, error) {
	query := `
		SELECT id, name, stockyard_id, capacity, current_utilization
		FROM loading_points ORDER BY name ASC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list loading points: %w", err)
	}
	defer rows.Close()
	var list []*entity.LoadingPoint
	for rows.Next() {
		var lp entity.LoadingPoint
		if err := rows.Scan(&lp.ID, &lp.Name, &lp.StockyardID, &lp.Capacity, &lp.CurrentUtilization); err != nil {
			return nil, fmt.Errorf("scan loading point: %w", err)
		}
		list = append(list, &lp)
	}
	return list, rows.Err()
}
