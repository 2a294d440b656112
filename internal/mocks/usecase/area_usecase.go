package usecase

import (
	"context"

	"backoffice/internal/domain/entity"
	"backoffice/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAreaUsecase is a testify mock of usecase.AreaUsecase.
type MockAreaUsecase struct {
	mock.Mock
}

// MockAreaUsecaseExpecter registers typed expectations on MockAreaUsecase.
type MockAreaUsecaseExpecter struct {
	mock *mock.Mock
}

// NewMockAreaUsecase creates a mock that asserts its expectations when the test ends.
func NewMockAreaUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAreaUsecase {
	m := &MockAreaUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// EXPECT returns the expecter of the mock.
func (m *MockAreaUsecase) EXPECT() *MockAreaUsecaseExpecter {
	return &MockAreaUsecaseExpecter{mock: &m.Mock}
}

// CreateArea provides a mock function.
func (m *MockAreaUsecase) CreateArea(ctx context.Context, input *usecase.CreateAreaInput) (*entity.Area, error) {
	ret := m.Called(ctx, input)

	var r0 *entity.Area
	if v := ret.Get(0); v != nil {
		r0 = v.(*entity.Area)
	}

	return r0, ret.Error(1)
}

// CreateArea is a helper method to define mock.On call.
func (e *MockAreaUsecaseExpecter) CreateArea(ctx any, input any) *mock.Call {
	return e.mock.On("CreateArea", ctx, input)
}

// GetArea provides a mock function.
func (m *MockAreaUsecase) GetArea(ctx context.Context, id uuid.UUID) (*entity.Area, error) {
	ret := m.Called(ctx, id)

	var r0 *entity.Area
	if v := ret.Get(0); v != nil {
		r0 = v.(*entity.Area)
	}

	return r0, ret.Error(1)
}

// GetArea is a helper method to define mock.On call.
func (e *MockAreaUsecaseExpecter) GetArea(ctx any, id any) *mock.Call {
	return e.mock.On("GetArea", ctx, id)
}

// ListAreas provides a mock function.
func (m *MockAreaUsecase) ListAreas(ctx context.Context, input usecase.AreaListInput) ([]*entity.Area, error) {
	ret := m.Called(ctx, input)

	var r0 []*entity.Area
	if v := ret.Get(0); v != nil {
		r0 = v.([]*entity.Area)
	}

	return r0, ret.Error(1)
}

// ListAreas is a helper method to define mock.On call.
func (e *MockAreaUsecaseExpecter) ListAreas(ctx any, input any) *mock.Call {
	return e.mock.On("ListAreas", ctx, input)
}

// UpdateArea provides a mock function.
func (m *MockAreaUsecase) UpdateArea(ctx context.Context, id uuid.UUID, input *usecase.UpdateAreaInput) (*entity.Area, error) {
	ret := m.Called(ctx, id, input)

	var r0 *entity.Area
	if v := ret.Get(0); v != nil {
		r0 = v.(*entity.Area)
	}

	return r0, ret.Error(1)
}

// UpdateArea is a helper method to define mock.On call.
func (e *MockAreaUsecaseExpecter) UpdateArea(ctx any, id any, input any) *mock.Call {
	return e.mock.On("UpdateArea", ctx, id, input)
}

// DeleteArea provides a mock function.
func (m *MockAreaUsecase) DeleteArea(ctx context.Context, id uuid.UUID) error {
	ret := m.Called(ctx, id)

	return ret.Error(0)
}

// DeleteArea is a helper method to define mock.On call.
func (e *MockAreaUsecaseExpecter) DeleteArea(ctx any, id any) *mock.Call {
	return e.mock.On("DeleteArea", ctx, id)
}
