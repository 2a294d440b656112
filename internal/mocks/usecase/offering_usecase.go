package usecase

import (
	"context"

	"backoffice/internal/domain/entity"
	"backoffice/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockOfferingUsecase is a testify mock of usecase.OfferingUsecase.
type MockOfferingUsecase struct {
	mock.Mock
}

// MockOfferingUsecaseExpecter registers typed expectations on MockOfferingUsecase.
type MockOfferingUsecaseExpecter struct {
	mock *mock.Mock
}

// NewMockOfferingUsecase creates a mock that asserts its expectations when the test ends.
func NewMockOfferingUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockOfferingUsecase {
	m := &MockOfferingUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// EXPECT returns the expecter of the mock.
func (m *MockOfferingUsecase) EXPECT() *MockOfferingUsecaseExpecter {
	return &MockOfferingUsecaseExpecter{mock: &m.Mock}
}

// CreateOffering provides a mock function.
func (m *MockOfferingUsecase) CreateOffering(ctx context.Context, input *usecase.CreateOfferingInput) (*entity.Offering, error) {
	ret := m.Called(ctx, input)

	var r0 *entity.Offering
	if v := ret.Get(0); v != nil {
		r0 = v.(*entity.Offering)
	}

	return r0, ret.Error(1)
}

// CreateOffering is a helper method to define mock.On call.
func (e *MockOfferingUsecaseExpecter) CreateOffering(ctx any, input any) *mock.Call {
	return e.mock.On("CreateOffering", ctx, input)
}

// GetOffering provides a mock function.
func (m *MockOfferingUsecase) GetOffering(ctx context.Context, id uuid.UUID) (*entity.Offering, error) {
	ret := m.Called(ctx, id)

	var r0 *entity.Offering
	if v := ret.Get(0); v != nil {
		r0 = v.(*entity.Offering)
	}

	return r0, ret.Error(1)
}

// GetOffering is a helper method to define mock.On call.
func (e *MockOfferingUsecaseExpecter) GetOffering(ctx any, id any) *mock.Call {
	return e.mock.On("GetOffering", ctx, id)
}

// ListOfferings provides a mock function.
func (m *MockOfferingUsecase) ListOfferings(ctx context.Context, input usecase.OfferingListInput) ([]*entity.Offering, error) {
	ret := m.Called(ctx, input)

	var r0 []*entity.Offering
	if v := ret.Get(0); v != nil {
		r0 = v.([]*entity.Offering)
	}

	return r0, ret.Error(1)
}

// ListOfferings is a helper method to define mock.On call.
func (e *MockOfferingUsecaseExpecter) ListOfferings(ctx any, input any) *mock.Call {
	return e.mock.On("ListOfferings", ctx, input)
}

// UpdateOffering provides a mock function.
func (m *MockOfferingUsecase) UpdateOffering(ctx context.Context, id uuid.UUID, input *usecase.UpdateOfferingInput) (*entity.Offering, error) {
	ret := m.Called(ctx, id, input)

	var r0 *entity.Offering
	if v := ret.Get(0); v != nil {
		r0 = v.(*entity.Offering)
	}

	return r0, ret.Error(1)
}

// UpdateOffering is a helper method to define mock.On call.
func (e *MockOfferingUsecaseExpecter) UpdateOffering(ctx any, id any, input any) *mock.Call {
	return e.mock.On("UpdateOffering", ctx, id, input)
}

// DeleteOffering provides a mock function.
func (m *MockOfferingUsecase) DeleteOffering(ctx context.Context, id uuid.UUID) error {
	ret := m.Called(ctx, id)

	return ret.Error(0)
}

// DeleteOffering is a helper method to define mock.On call.
func (e *MockOfferingUsecaseExpecter) DeleteOffering(ctx any, id any) *mock.Call {
	return e.mock.On("DeleteOffering", ctx, id)
}
