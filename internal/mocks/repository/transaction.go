package repository

import (
	"context"

	"backoffice/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockTransactionManager is a testify mock of repository.TransactionManager.
type MockTransactionManager struct {
	mock.Mock
}

// MockTransactionManagerExpecter registers typed expectations on MockTransactionManager.
type MockTransactionManagerExpecter struct {
	mock *mock.Mock
}

// NewMockTransactionManager creates a mock that asserts its expectations when the test ends.
func NewMockTransactionManager(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// EXPECT returns the expecter of the mock.
func (m *MockTransactionManager) EXPECT() *MockTransactionManagerExpecter {
	return &MockTransactionManagerExpecter{mock: &m.Mock}
}

// Execute provides a mock function.
func (m *MockTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	ret := m.Called(ctx, fn)
	if rf, ok := ret.Get(0).(func(context.Context, func(repository.RepositoryFactory) error) error); ok {
		return rf(ctx, fn)
	}

	return ret.Error(0)
}

// Execute is a helper method to define mock.On call.
func (e *MockTransactionManagerExpecter) Execute(ctx any, fn any) *mock.Call {
	return e.mock.On("Execute", ctx, fn)
}

// MockRepositoryFactory is a testify mock of repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

// MockRepositoryFactoryExpecter registers typed expectations on MockRepositoryFactory.
type MockRepositoryFactoryExpecter struct {
	mock *mock.Mock
}

// NewMockRepositoryFactory creates a mock that asserts its expectations when the test ends.
func NewMockRepositoryFactory(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRepositoryFactory {
	m := &MockRepositoryFactory{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// EXPECT returns the expecter of the mock.
func (m *MockRepositoryFactory) EXPECT() *MockRepositoryFactoryExpecter {
	return &MockRepositoryFactoryExpecter{mock: &m.Mock}
}

// NewAdminRepository provides a mock function.
func (m *MockRepositoryFactory) NewAdminRepository() repository.AdminRepository {
	ret := m.Called()
	r0, _ := ret.Get(0).(repository.AdminRepository)

	return r0
}

// NewAdminRepository is a helper method to define mock.On call.
func (e *MockRepositoryFactoryExpecter) NewAdminRepository() *mock.Call {
	return e.mock.On("NewAdminRepository")
}

// NewManagerRepository provides a mock function.
func (m *MockRepositoryFactory) NewManagerRepository() repository.ManagerRepository {
	ret := m.Called()
	r0, _ := ret.Get(0).(repository.ManagerRepository)

	return r0
}

// NewManagerRepository is a helper method to define mock.On call.
func (e *MockRepositoryFactoryExpecter) NewManagerRepository() *mock.Call {
	return e.mock.On("NewManagerRepository")
}

// NewAreaRepository provides a mock function.
func (m *MockRepositoryFactory) NewAreaRepository() repository.AreaRepository {
	ret := m.Called()
	r0, _ := ret.Get(0).(repository.AreaRepository)

	return r0
}

// NewAreaRepository is a helper method to define mock.On call.
func (e *MockRepositoryFactoryExpecter) NewAreaRepository() *mock.Call {
	return e.mock.On("NewAreaRepository")
}

// NewOfferingRepository provides a mock function.
func (m *MockRepositoryFactory) NewOfferingRepository() repository.OfferingRepository {
	ret := m.Called()
	r0, _ := ret.Get(0).(repository.OfferingRepository)

	return r0
}

// NewOfferingRepository is a helper method to define mock.On call.
func (e *MockRepositoryFactoryExpecter) NewOfferingRepository() *mock.Call {
	return e.mock.On("NewOfferingRepository")
}

// NewSequenceRepository provides a mock function.
func (m *MockRepositoryFactory) NewSequenceRepository() repository.SequenceRepository {
	ret := m.Called()
	r0, _ := ret.Get(0).(repository.SequenceRepository)

	return r0
}

// NewSequenceRepository is a helper method to define mock.On call.
func (e *MockRepositoryFactoryExpecter) NewSequenceRepository() *mock.Call {
	return e.mock.On("NewSequenceRepository")
}
