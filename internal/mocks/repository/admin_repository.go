package repository

import (
	"context"

	"backoffice/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAdminRepository is a testify mock of repository.AdminRepository.
type MockAdminRepository struct {
	mock.Mock
}

// MockAdminRepositoryExpecter registers typed expectations on MockAdminRepository.
type MockAdminRepositoryExpecter struct {
	mock *mock.Mock
}

// NewMockAdminRepository creates a mock that asserts its expectations when the test ends.
func NewMockAdminRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAdminRepository {
	m := &MockAdminRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// EXPECT returns the expecter of the mock.
func (m *MockAdminRepository) EXPECT() *MockAdminRepositoryExpecter {
	return &MockAdminRepositoryExpecter{mock: &m.Mock}
}

// Create provides a mock function.
func (m *MockAdminRepository) Create(ctx context.Context, admin *entity.Admin) error {
	ret := m.Called(ctx, admin)

	return ret.Error(0)
}

// Create is a helper method to define mock.On call.
func (e *MockAdminRepositoryExpecter) Create(ctx any, admin any) *mock.Call {
	return e.mock.On("Create", ctx, admin)
}

// FindByID provides a mock function.
func (m *MockAdminRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error) {
	ret := m.Called(ctx, id)

	var r0 *entity.Admin
	if v := ret.Get(0); v != nil {
		r0 = v.(*entity.Admin)
	}

	return r0, ret.Error(1)
}

// FindByID is a helper method to define mock.On call.
func (e *MockAdminRepositoryExpecter) FindByID(ctx any, id any) *mock.Call {
	return e.mock.On("FindByID", ctx, id)
}

// FindByEmail provides a mock function.
func (m *MockAdminRepository) FindByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	ret := m.Called(ctx, email)

	var r0 *entity.Admin
	if v := ret.Get(0); v != nil {
		r0 = v.(*entity.Admin)
	}

	return r0, ret.Error(1)
}

// FindByEmail is a helper method to define mock.On call.
func (e *MockAdminRepositoryExpecter) FindByEmail(ctx any, email any) *mock.Call {
	return e.mock.On("FindByEmail", ctx, email)
}

// Update provides a mock function.
func (m *MockAdminRepository) Update(ctx context.Context, admin *entity.Admin) error {
	ret := m.Called(ctx, admin)

	return ret.Error(0)
}

// Update is a helper method to define mock.On call.
func (e *MockAdminRepositoryExpecter) Update(ctx any, admin any) *mock.Call {
	return e.mock.On("Update", ctx, admin)
}

// Count provides a mock function.
func (m *MockAdminRepository) Count(ctx context.Context) (int64, error) {
	ret := m.Called(ctx)
	r0, _ := ret.Get(0).(int64)

	return r0, ret.Error(1)
}

// Count is a helper method to define mock.On call.
func (e *MockAdminRepositoryExpecter) Count(ctx any) *mock.Call {
	return e.mock.On("Count", ctx)
}
