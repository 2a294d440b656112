package repository

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockSequenceRepository is a testify mock of repository.SequenceRepository.
type MockSequenceRepository struct {
	mock.Mock
}

// MockSequenceRepositoryExpecter registers typed expectations on MockSequenceRepository.
type MockSequenceRepositoryExpecter struct {
	mock *mock.Mock
}

// NewMockSequenceRepository creates a mock that asserts its expectations when the test ends.
func NewMockSequenceRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSequenceRepository {
	m := &MockSequenceRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// EXPECT returns the expecter of the mock.
func (m *MockSequenceRepository) EXPECT() *MockSequenceRepositoryExpecter {
	return &MockSequenceRepositoryExpecter{mock: &m.Mock}
}

// NextManagerCodeNumber provides a mock function.
func (m *MockSequenceRepository) NextManagerCodeNumber(ctx context.Context) (int64, error) {
	ret := m.Called(ctx)
	r0, _ := ret.Get(0).(int64)

	return r0, ret.Error(1)
}

// NextManagerCodeNumber is a helper method to define mock.On call.
func (e *MockSequenceRepositoryExpecter) NextManagerCodeNumber(ctx any) *mock.Call {
	return e.mock.On("NextManagerCodeNumber", ctx)
}
