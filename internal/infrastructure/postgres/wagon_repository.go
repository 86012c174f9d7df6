package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/railops/rake-planner-api/internal/domain/entity"
	"github.com/railops/rake-planner-api/internal/domain/repository"
)

var (
	_ repository.WagonRepository = (*WagonRepo)(nil)
	_ repository.RakeRepository  = (*RakeRepo)(nil)
)

// WagonRepo lecturas del pool de vagones sobre PostgreSQL.
type WagonRepo struct {
	pool *pgxpool.Pool
}

// NewWagonRepository construye el adaptador de lectura de vagones.
func NewWagonRepository(pool *pgxpool.Pool) *WagonRepo {
	return &WagonRepo{pool: pool}
}

// ListByStatus devuelve los vagones en el estado dado, por número de vagón.
func (r *WagonRepo) ListByStatus(ctx context.Context, status string) ([]*entity.Wagon, error) {
	query := `
		SELECT id, wagon_number, type, capacity, status
		FROM wagons WHERE status = $1 ORDER BY wagon_number ASC`
	rows, err := r.pool.Query(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("list wagons: %w", err)
	}
	defer rows.Close()
	var list []*entity.Wagon
	for rows.Next() {
		var w entity.Wagon
		if err := rows.Scan(&w.ID, &w.WagonNumber, &w.Type, &w.Capacity, &w.Status); err != nil {
			return nil, fmt.Errorf("scan wagon: %w", err)
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}

// RakeRepo lecturas de formaciones de rake sobre PostgreSQL.
type RakeRepo struct {
	pool *pgxpool.Pool
}

// NewRakeRepository construye el adaptador de lectura de rakes.
func NewRakeRepository(pool *pgxpool.Pool) *RakeRepo {
	return &RakeRepo{pool: pool}
}

// ListByStatus devuelve las formaciones en el estado dado con sus vagones.
func (r *RakeRepo) ListByStatus(ctx context.Context, status string) ([]*entity.RakeInProgress, error) {
	query := `
		SELECT id, rake_number, wagon_ids, status, formation_date
		FROM rakes WHERE status = $1 ORDER BY formation_date ASC`
	rows, err := r.pool.Query(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("list rakes: %w", err)
	}
	defer rows.Close()
	var list []*entity.RakeInProgress
	for rows.Next() {
		var rk entity.RakeInProgress
		if err := rows.Scan(&rk.ID, &rk.RakeNumber, &rk.WagonIDs, &rk.Status, &rk.FormationDate); err != nil {
			return nil, fmt.Errorf("scan rake: %w", err)
		}
		list = append(list, &rk)
	}
	return list, rows.Err()
}
