package repository

import (
	"context"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockManagerRepository is a testify mock of repository.ManagerRepository.
type MockManagerRepository struct {
	mock.Mock
}

// MockManagerRepositoryExpecter registers typed expectations on MockManagerRepository.
type MockManagerRepositoryExpecter struct {
	mock *mock.Mock
}

// NewMockManagerRepository creates a mock that asserts its expectations when the test ends.
func NewMockManagerRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockManagerRepository {
	m := &MockManagerRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// EXPECT returns the expecter of the mock.
func (m *MockManagerRepository) EXPECT() *MockManagerRepositoryExpecter {
	return &MockManagerRepositoryExpecter{mock: &m.Mock}
}

// Create provides a mock function.
func (m *MockManagerRepository) Create(ctx context.Context, manager *entity.Manager) error {
	ret := m.Called(ctx, manager)

	return ret.Error(0)
}

// Create is a helper method to define mock.On call.
func (e *MockManagerRepositoryExpecter) Create(ctx any, manager any) *mock.Call {
	return e.mock.On("Create", ctx, manager)
}

// FindByID provides a mock function.
func (m *MockManagerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Manager, error) {
	ret := m.Called(ctx, id)

	var r0 *entity.Manager
	if v := ret.Get(0); v != nil {
		r0 = v.(*entity.Manager)
	}

	return r0, ret.Error(1)
}

// FindByID is a helper method to define mock.On call.
func (e *MockManagerRepositoryExpecter) FindByID(ctx any, id any) *mock.Call {
	return e.mock.On("FindByID", ctx, id)
}

// FindByEmail provides a mock function.
func (m *MockManagerRepository) FindByEmail(ctx context.Context, email string) (*entity.Manager, error) {
	ret := m.Called(ctx, email)

	var r0 *entity.Manager
	if v := ret.Get(0); v != nil {
		r0 = v.(*entity.Manager)
	}

	return r0, ret.Error(1)
}

// FindByEmail is a helper method to define mock.On call.
func (e *MockManagerRepositoryExpecter) FindByEmail(ctx any, email any) *mock.Call {
	return e.mock.On("FindByEmail", ctx, email)
}

// Find provides a mock function.
func (m *MockManagerRepository) Find(ctx context.Context, filter repository.ManagerFilter) ([]*entity.Manager, error) {
	ret := m.Called(ctx, filter)

	var r0 []*entity.Manager
	if v := ret.Get(0); v != nil {
		r0 = v.([]*entity.Manager)
	}

	return r0, ret.Error(1)
}

// Find is a helper method to define mock.On call.
func (e *MockManagerRepositoryExpecter) Find(ctx any, filter any) *mock.Call {
	return e.mock.On("Find", ctx, filter)
}

// Update provides a mock function.
func (m *MockManagerRepository) Update(ctx context.Context, manager *entity.Manager) error {
	ret := m.Called(ctx, manager)

	return ret.Error(0)
}

// Update is a helper method to define mock.On call.
func (e *MockManagerRepositoryExpecter) Update(ctx any, manager any) *mock.Call {
	return e.mock.On("Update", ctx, manager)
}

// Delete provides a mock function.
func (m *MockManagerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ret := m.Called(ctx, id)

	return ret.Error(0)
}

// Delete is a helper method to define mock.On call.
func (e *MockManagerRepositoryExpecter) Delete(ctx any, id any) *mock.Call {
	return e.mock.On("Delete", ctx, id)
}

// ExistsByArea provides a mock function.
func (m *MockManagerRepository) ExistsByArea(ctx context.Context, areaID uuid.UUID) (bool, error) {
	ret := m.Called(ctx, areaID)
	r0, _ := ret.Get(0).(bool)

	return r0, ret.Error(1)
}

// ExistsByArea is a helper method to define mock.On call.
func (e *MockManagerRepositoryExpecter) ExistsByArea(ctx any, areaID any) *mock.Call {
	return e.mock.On("ExistsByArea", ctx, areaID)
}

// Count provides a mock function.
func (m *MockManagerRepository) Count(ctx context.Context) (int64, error) {
	ret := m.Called(ctx)
	r0, _ := ret.Get(0).(int64)

	return r0, ret.Error(1)
}

// Count is a helper method to define mock.On call.
func (e *MockManagerRepositoryExpecter) Count(ctx any) *mock.Call {
	return e.mock.On("Count", ctx)
}

// CountByStatus provides a mock function.
func (m *MockManagerRepository) CountByStatus(ctx context.Context) (map[entity.ManagerStatus]int64, error) {
	ret := m.Called(ctx)

	var r0 map[entity.ManagerStatus]int64
	if v := ret.Get(0); v != nil {
		r0 = v.(map[entity.ManagerStatus]int64)
	}

	return r0, ret.Error(1)
}

// CountByStatus is a helper method to define mock.On call.
func (e *MockManagerRepositoryExpecter) CountByStatus(ctx any) *mock.Call {
	return e.mock.On("CountByStatus", ctx)
}
