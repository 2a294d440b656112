package usecase

import (
	"context"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"
)

// DashboardStats summarizes the back office for the dashboard.
type DashboardStats struct {
	TotalManagers    int64                          `json:"totalManagers"`
	TotalAreas       int64                          `json:"totalAreas"`
	TotalServices    int64                          `json:"totalServices"`
	ManagersByStatus map[entity.ManagerStatus]int64 `json:"managersByStatus"`
	ServicesByArea   []repository.AreaServiceCount  `json:"servicesByArea"`
}

// StatsUsecase computes dashboard statistics.
type StatsUsecase interface {
	Dashboard(ctx context.Context) (*DashboardStats, error)
}
