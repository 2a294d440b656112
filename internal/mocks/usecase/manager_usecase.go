package usecase

import (
	"context"

	"backoffice/internal/domain/entity"
	"backoffice/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockManagerUsecase is a testify mock of usecase.ManagerUsecase.
type MockManagerUsecase struct {
	mock.Mock
}

// MockManagerUsecaseExpecter registers typed expectations on MockManagerUsecase.
type MockManagerUsecaseExpecter struct {
	mock *mock.Mock
}

// NewMockManagerUsecase creates a mock that asserts its expectations when the test ends.
func NewMockManagerUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockManagerUsecase {
	m := &MockManagerUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// EXPECT returns the expecter of the mock.
func (m *MockManagerUsecase) EXPECT() *MockManagerUsecaseExpecter {
	return &MockManagerUsecaseExpecter{mock: &m.Mock}
}

// CreateManager provides a mock function.
func (m *MockManagerUsecase) CreateManager(ctx context.Context, input *usecase.CreateManagerInput) (*entity.Manager, error) {
	ret := m.Called(ctx, input)

	var r0 *entity.Manager
	if v := ret.Get(0); v != nil {
		r0 = v.(*entity.Manager)
	}

	return r0, ret.Error(1)
}

// CreateManager is a helper method to define mock.On call.
func (e *MockManagerUsecaseExpecter) CreateManager(ctx any, input any) *mock.Call {
	return e.mock.On("CreateManager", ctx, input)
}

// GetManager provides a mock function.
func (m *MockManagerUsecase) GetManager(ctx context.Context, id uuid.UUID) (*entity.Manager, error) {
	ret := m.Called(ctx, id)

	var r0 *entity.Manager
	if v := ret.Get(0); v != nil {
		r0 = v.(*entity.Manager)
	}

	return r0, ret.Error(1)
}

// GetManager is a helper method to define mock.On call.
func (e *MockManagerUsecaseExpecter) GetManager(ctx any, id any) *mock.Call {
	return e.mock.On("GetManager", ctx, id)
}

// ListManagers provides a mock function.
func (m *MockManagerUsecase) ListManagers(ctx context.Context, input usecase.ManagerListInput) ([]*entity.Manager, error) {
	ret := m.Called(ctx, input)

	var r0 []*entity.Manager
	if v := ret.Get(0); v != nil {
		r0 = v.([]*entity.Manager)
	}

	return r0, ret.Error(1)
}

// ListManagers is a helper method to define mock.On call.
func (e *MockManagerUsecaseExpecter) ListManagers(ctx any, input any) *mock.Call {
	return e.mock.On("ListManagers", ctx, input)
}

// UpdateManager provides a mock function.
func (m *MockManagerUsecase) UpdateManager(ctx context.Context, id uuid.UUID, input *usecase.UpdateManagerInput) (*entity.Manager, error) {
	ret := m.Called(ctx, id, input)

	var r0 *entity.Manager
	if v := ret.Get(0); v != nil {
		r0 = v.(*entity.Manager)
	}

	return r0, ret.Error(1)
}

// UpdateManager is a helper method to define mock.On call.
func (e *MockManagerUsecaseExpecter) UpdateManager(ctx any, id any, input any) *mock.Call {
	return e.mock.On("UpdateManager", ctx, id, input)
}

// DeleteManager provides a mock function.
func (m *MockManagerUsecase) DeleteManager(ctx context.Context, id uuid.UUID) error {
	ret := m.Called(ctx, id)

	return ret.Error(0)
}

// DeleteManager is a helper method to define mock.On call.
func (e *MockManagerUsecaseExpecter) DeleteManager(ctx any, id any) *mock.Call {
	return e.mock.On("DeleteManager", ctx, id)
}

// ManagerBadge provides a mock function.
func (m *MockManagerUsecase) ManagerBadge(ctx context.Context, id uuid.UUID) ([]byte, error) {
	ret := m.Called(ctx, id)

	var r0 []byte
	if v := ret.Get(0); v != nil {
		r0 = v.([]byte)
	}

	return r0, ret.Error(1)
}

// ManagerBadge is a helper method to define mock.On call.
func (e *MockManagerUsecaseExpecter) ManagerBadge(ctx any, id any) *mock.Call {
	return e.mock.On("ManagerBadge", ctx, id)
}

// VerifyBadge provides a mock function.
func (m *MockManagerUsecase) VerifyBadge(ctx context.Context, input *usecase.VerifyBadgeInput) (*entity.Manager, error) {
	ret := m.Called(ctx, input)

	var r0 *entity.Manager
	if v := ret.Get(0); v != nil {
		r0 = v.(*entity.Manager)
	}

	return r0, ret.Error(1)
}

// VerifyBadge is a helper method to define mock.On call.
func (e *MockManagerUsecaseExpecter) VerifyBadge(ctx any, input any) *mock.Call {
	return e.mock.On("VerifyBadge", ctx, input)
}
