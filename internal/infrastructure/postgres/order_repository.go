package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/railops/rake-planner-api/internal/domain/entity"
	"github.com/railops/rake-planner-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo lecturas de pedidos sobre PostgreSQL (solo consultas; las
// mutaciones de estado pertenecen al workflow de despacho externo).
type OrderRepo struct {
	pool *pgxpool.Pool
}

// NewOrderRepository construye el adaptador de lectura de pedidos.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

const orderColumns = `id, customer_name, material_id, quantity, destination, priority, deadline, penalty_per_day, status, created_at`

// ListPending devuelve los pedidos pendientes ordenados por deadline ascendente.
func (r *OrderRepo) ListPending(ctx context.Context) ([]*entity.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders WHERE status = $1 ORDER BY deadline ASC`
	rows, err := r.pool.Query(ctx, query, entity.OrderStatusPending)
	if err != nil {
		return nil, fmt.Errorf("list pending orders: %w", err)
	}
	defer rows.Close()
	return scanOrders(rows)
}

// GetByIDs devuelve los pedidos existentes entre los IDs dados, en orden de deadline.
func (r *OrderRepo) GetByIDs(ctx context.Context, ids []string) ([]*entity.Order, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `
		SELECT ` + orderColumns + `
		FROM orders WHERE id = ANY($1) ORDER BY deadline ASC`
	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("get orders by ids: %w", err)
	}
	defer rows.Close()
	return scanOrders(rows)
}

func scanOrders(rows pgx.Rows) ([]*entity.Order, error) {
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(
			&o.ID, &o.CustomerName, &o.MaterialID, &o.Quantity, &o.Destination,
			&o.Priority, &o.Deadline, &o.PenaltyPerDay, &o.Status, &o.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
