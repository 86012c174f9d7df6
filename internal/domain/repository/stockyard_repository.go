package repository

import (
	"context"

	"github.com/railops/rake-planner-api/internal/domain/entity"
)

// StockyardRepository puerto de lectura de stockyards.
type StockyardRepository interface {
	ListAll(ctx context.Context) ([]*entity.Stockyard, error)
}

// LoadingPointRepository puerto de lectura de puntos de carga.
type LoadingPointRepository interface {
	ListAll(ctx context.Context) ([]*entity.LoadingPoint, error)
}
