package usecase

import (
	"context"

	"backoffice/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockStatsUsecase is a testify mock of usecase.StatsUsecase.
type MockStatsUsecase struct {
	mock.Mock
}

// MockStatsUsecaseExpecter registers typed expectations on MockStatsUsecase.
type MockStatsUsecaseExpecter struct {
	mock *mock.Mock
}

// NewMockStatsUsecase creates a mock that asserts its expectations when the test ends.
func NewMockStatsUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockStatsUsecase {
	m := &MockStatsUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// EXPECT returns the expecter of the mock.
func (m *MockStatsUsecase) EXPECT() *MockStatsUsecaseExpecter {
	return &MockStatsUsecaseExpecter{mock: &m.Mock}
}

// Dashboard provides a mock function.
func (m *MockStatsUsecase) Dashboard(ctx context.Context) (*usecase.DashboardStats, error) {
	ret := m.Called(ctx)

	var r0 *usecase.DashboardStats
	if v := ret.Get(0); v != nil {
		r0 = v.(*usecase.DashboardStats)
	}

	return r0, ret.Error(1)
}

// Dashboard is a helper method to define mock.On call.
func (e *MockStatsUsecaseExpecter) Dashboard(ctx any) *mock.Call {
	return e.mock.On("Dashboard", ctx)
}
