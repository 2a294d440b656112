package repository

import (
	"context"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAreaRepository is a testify mock of repository.AreaRepository.
type MockAreaRepository struct {
	mock.Mock
}

// MockAreaRepositoryExpecter registers typed expectations on MockAreaRepository.
type MockAreaRepositoryExpecter struct {
	mock *mock.Mock
}

// NewMockAreaRepository creates a mock that asserts its expectations when the test ends.
func NewMockAreaRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAreaRepository {
	m := &MockAreaRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// EXPECT returns the expecter of the mock.
func (m *MockAreaRepository) EXPECT() *MockAreaRepositoryExpecter {
	return &MockAreaRepositoryExpecter{mock: &m.Mock}
}

// Create provides a mock function.
func (m *MockAreaRepository) Create(ctx context.Context, area *entity.Area) error {
	ret := m.Called(ctx, area)

	return ret.Error(0)
}

// Create is a helper method to define mock.On call.
func (e *MockAreaRepositoryExpecter) Create(ctx any, area any) *mock.Call {
	return e.mock.On("Create", ctx, area)
}

// FindByID provides a mock function.
func (m *MockAreaRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Area, error) {
	ret := m.Called(ctx, id)

	var r0 *entity.Area
	if v := ret.Get(0); v != nil {
		r0 = v.(*entity.Area)
	}

	return r0, ret.Error(1)
}

// FindByID is a helper method to define mock.On call.
func (e *MockAreaRepositoryExpecter) FindByID(ctx any, id any) *mock.Call {
	return e.mock.On("FindByID", ctx, id)
}

// LockByID provides a mock function.
func (m *MockAreaRepository) LockByID(ctx context.Context, id uuid.UUID) (*entity.Area, error) {
	ret := m.Called(ctx, id)

	var r0 *entity.Area
	if v := ret.Get(0); v != nil {
		r0 = v.(*entity.Area)
	}

	return r0, ret.Error(1)
}

// LockByID is a helper method to define mock.On call.
func (e *MockAreaRepositoryExpecter) LockByID(ctx any, id any) *mock.Call {
	return e.mock.On("LockByID", ctx, id)
}

// Find provides a mock function.
func (m *MockAreaRepository) Find(ctx context.Context, filter repository.AreaFilter) ([]*entity.Area, error) {
	ret := m.Called(ctx, filter)

	var r0 []*entity.Area
	if v := ret.Get(0); v != nil {
		r0 = v.([]*entity.Area)
	}

	return r0, ret.Error(1)
}

// Find is a helper method to define mock.On call.
func (e *MockAreaRepositoryExpecter) Find(ctx any, filter any) *mock.Call {
	return e.mock.On("Find", ctx, filter)
}

// Update provides a mock function.
func (m *MockAreaRepository) Update(ctx context.Context, area *entity.Area) error {
	ret := m.Called(ctx, area)

	return ret.Error(0)
}

// Update is a helper method to define mock.On call.
func (e *MockAreaRepositoryExpecter) Update(ctx any, area any) *mock.Call {
	return e.mock.On("Update", ctx, area)
}

// Delete provides a mock function.
func (m *MockAreaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ret := m.Called(ctx, id)

	return ret.Error(0)
}

// Delete is a helper method to define mock.On call.
func (e *MockAreaRepositoryExpecter) Delete(ctx any, id any) *mock.Call {
	return e.mock.On("Delete", ctx, id)
}

// Exists provides a mock function.
func (m *MockAreaRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	ret := m.Called(ctx, id)
	r0, _ := ret.Get(0).(bool)

	return r0, ret.Error(1)
}

// Exists is a helper method to define mock.On call.
func (e *MockAreaRepositoryExpecter) Exists(ctx any, id any) *mock.Call {
	return e.mock.On("Exists", ctx, id)
}

// Count provides a mock function.
func (m *MockAreaRepository) Count(ctx context.Context) (int64, error) {
	ret := m.Called(ctx)
	r0, _ := ret.Get(0).(int64)

	return r0, ret.Error(1)
}

// Count is a helper method to define mock.On call.
func (e *MockAreaRepositoryExpecter) Count(ctx any) *mock.Call {
	return e.mock.On("Count", ctx)
}
