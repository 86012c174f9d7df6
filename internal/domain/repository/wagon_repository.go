package repository

import (
	"context"

	"github.com/railops/rake-planner-api/internal/domain/entity"
)

// WagonRepository puerto de lectura del pool de vagones.
type WagonRepository interface {
	// ListByStatus devuelve los vagones en el estado dado (típicamente available).
	ListByStatus(ctx context.Context, status string) ([]*entity.Wagon, error)
}

// RakeRepository puerto de lectura de formaciones de rake en curso.
type RakeRepository interface {
	// ListByStatus devuelve las formaciones en el estado dado (típicamente loading).
	ListByStatus(ctx context.Context, status string) ([]*entity.RakeInProgress, error)
}
