package impl

import (
	"context"

	"backoffice/internal/domain/repository"
	"backoffice/internal/usecase"

	"github.com/pkg/errors"
)

// statsService implements the StatsUsecase interface.
type statsService struct {
	managerRepo  repository.ManagerRepository
	areaRepo     repository.AreaRepository
	offeringRepo repository.OfferingRepository
}

// NewStatsService is the constructor for statsService.
func NewStatsService(
	managerRepo repository.ManagerRepository,
	areaRepo repository.AreaRepository,
	offeringRepo repository.OfferingRepository,
) usecase.StatsUsecase {
	return &statsService{
		managerRepo:  managerRepo,
		areaRepo:     areaRepo,
		offeringRepo: offeringRepo,
	}
}

func (srv *statsService) Dashboard(ctx context.Context) (*usecase.DashboardStats, error) {
	totalManagers, err := srv.managerRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count managers")
	}
	totalAreas, err := srv.areaRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count areas")
	}
	totalServices, err := srv.offeringRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count services")
	}
	byStatus, err := srv.managerRepo.CountByStatus(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count managers by status")
	}
	byArea, err := srv.offeringRepo.CountByArea(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count services by area")
	}

	return &usecase.DashboardStats{
		TotalManagers:    totalManagers,
		TotalAreas:       totalAreas,
		TotalServices:    totalServices,
		ManagersByStatus: byStatus,
		ServicesByArea:   byArea,
	}, nil
}
