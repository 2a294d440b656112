package repository

import (
	"context"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockOfferingRepository is a testify mock of repository.OfferingRepository.
type MockOfferingRepository struct {
	mock.Mock
}

// MockOfferingRepositoryExpecter registers typed expectations on MockOfferingRepository.
type MockOfferingRepositoryExpecter struct {
	mock *mock.Mock
}

// NewMockOfferingRepository creates a mock that asserts its expectations when the test ends.
func NewMockOfferingRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockOfferingRepository {
	m := &MockOfferingRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// EXPECT returns the expecter of the mock.
func (m *MockOfferingRepository) EXPECT() *MockOfferingRepositoryExpecter {
	return &MockOfferingRepositoryExpecter{mock: &m.Mock}
}

// Create provides a mock function.
func (m *MockOfferingRepository) Create(ctx context.Context, offering *entity.Offering) error {
	ret := m.Called(ctx, offering)

	return ret.Error(0)
}

// Create is a helper method to define mock.On call.
func (e *MockOfferingRepositoryExpecter) Create(ctx any, offering any) *mock.Call {
	return e.mock.On("Create", ctx, offering)
}

// FindByID provides a mock function.
func (m *MockOfferingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Offering, error) {
	ret := m.Called(ctx, id)

	var r0 *entity.Offering
	if v := ret.Get(0); v != nil {
		r0 = v.(*entity.Offering)
	}

	return r0, ret.Error(1)
}

// FindByID is a helper method to define mock.On call.
func (e *MockOfferingRepositoryExpecter) FindByID(ctx any, id any) *mock.Call {
	return e.mock.On("FindByID", ctx, id)
}

// Find provides a mock function.
func (m *MockOfferingRepository) Find(ctx context.Context, filter repository.OfferingFilter) ([]*entity.Offering, error) {
	ret := m.Called(ctx, filter)

	var r0 []*entity.Offering
	if v := ret.Get(0); v != nil {
		r0 = v.([]*entity.Offering)
	}

	return r0, ret.Error(1)
}

// Find is a helper method to define mock.On call.
func (e *MockOfferingRepositoryExpecter) Find(ctx any, filter any) *mock.Call {
	return e.mock.On("Find", ctx, filter)
}

// Update provides a mock function.
func (m *MockOfferingRepository) Update(ctx context.Context, offering *entity.Offering) error {
	ret := m.Called(ctx, offering)

	return ret.Error(0)
}

// Update is a helper method to define mock.On call.
func (e *MockOfferingRepositoryExpecter) Update(ctx any, offering any) *mock.Call {
	return e.mock.On("Update", ctx, offering)
}

// Delete provides a mock function.
func (m *MockOfferingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ret := m.Called(ctx, id)

	return ret.Error(0)
}

// Delete is a helper method to define mock.On call.
func (e *MockOfferingRepositoryExpecter) Delete(ctx any, id any) *mock.Call {
	return e.mock.On("Delete", ctx, id)
}

// ExistsByArea provides a mock function.
func (m *MockOfferingRepository) ExistsByArea(ctx context.Context, areaID uuid.UUID) (bool, error) {
	ret := m.Called(ctx, areaID)
	r0, _ := ret.Get(0).(bool)

	return r0, ret.Error(1)
}

// ExistsByArea is a helper method to define mock.On call.
func (e *MockOfferingRepositoryExpecter) ExistsByArea(ctx any, areaID any) *mock.Call {
	return e.mock.On("ExistsByArea", ctx, areaID)
}

// Count provides a mock function.
func (m *MockOfferingRepository) Count(ctx context.Context) (int64, error) {
	ret := m.Called(ctx)
	r0, _ := ret.Get(0).(int64)

	return r0, ret.Error(1)
}

// Count is a helper method to define mock.On call.
func (e *MockOfferingRepositoryExpecter) Count(ctx any) *mock.Call {
	return e.mock.On("Count", ctx)
}

// CountByArea provides a mock function.
func (m *MockOfferingRepository) CountByArea(ctx context.Context) ([]repository.AreaServiceCount, error) {
	ret := m.Called(ctx)

	var r0 []repository.AreaServiceCount
	if v := ret.Get(0); v != nil {
		r0 = v.([]repository.AreaServiceCount)
	}

	return r0, ret.Error(1)
}

// CountByArea is a helper method to define mock.On call.
func (e *MockOfferingRepositoryExpecter) CountByArea(ctx any) *mock.Call {
	return e.mock.On("CountByArea", ctx)
}
