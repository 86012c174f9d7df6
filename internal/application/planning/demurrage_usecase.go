package planning

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/railops/rake-planner-api/internal/application/dto"
	"github.com/railops/rake-planner-api/internal/domain/entity"
	"github.com/railops/rake-planner-api/internal/domain/rake"
	"github.com/railops/rake-planner-api/internal/domain/repository"
)

// DemurrageUseCase consultas de demora sobre los rakes en cargue.
// Clasificación de solo lectura: se recalcula con el reloj en cada llamada.
type DemurrageUseCase struct {
	rakeRepo         repository.RakeRepository
	ratePerHourWagon decimal.Decimal
}

// NewDemurrageUseCase construye el caso de uso de demora.
func NewDemurrageUseCase(rakeRepo repository.RakeRepository, ratePerHourWagon decimal.Decimal) *DemurrageUseCase {
	return &DemurrageUseCase{rakeRepo: rakeRepo, ratePerHourWagon: ratePerHourWagon}
}

// ActiveAlerts devuelve las alertas de demora (rakes con 12 h o más en cargue).
func (uc *DemurrageUseCase) ActiveAlerts(ctx context.Context) ([]dto.DemurrageAlertDTO, error) {
	summary, err := uc.estimate(ctx)
	if err != nil {
		return nil, err
	}
	alerts := make([]dto.DemurrageAlertDTO, 0, len(summary.Alerts))
	for _, a := range summary.Alerts {
		alerts = append(alerts, dto.DemurrageAlertDTO{
			RakeID:       a.RakeID,
			RakeNumber:   a.RakeNumber,
			WagonCount:   a.WagonCount,
			ElapsedHours: a.ElapsedHours,
			AccruedCost:  a.AccruedCost,
			AlertLevel:   string(a.Level),
		})
	}
	return alerts, nil
}

// TotalCost devuelve el costo de demora acumulado de todos los rakes en cargue.
func (uc *DemurrageUseCase) TotalCost(ctx context.Context) (*dto.DemurrageTotalDTO, error) {
	summary, err := uc.estimate(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.DemurrageTotalDTO{
		RakesLoading:       summary.RakesLoading,
		TotalDemurrageCost: summary.TotalCost,
	}, nil
}

func (uc *DemurrageUseCase) estimate(ctx context.Context) (rake.DemurrageSummary, error) {
	rakes, err := uc.rakeRepo.ListByStatus(ctx, entity.RakeStatusLoading)
	if err != nil {
		return rake.DemurrageSummary{}, err
	}
	return rake.EstimateDemurrage(rakes, uc.ratePerHourWagon, time.Now().UTC()), nil
}
