package service

import (
	"github.com/stretchr/testify/mock"
)

// MockPasswordHasher is a testify mock of service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

// MockPasswordHasherExpecter registers typed expectations on MockPasswordHasher.
type MockPasswordHasherExpecter struct {
	mock *mock.Mock
}

// NewMockPasswordHasher creates a mock that asserts its expectations when the test ends.
func NewMockPasswordHasher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// EXPECT returns the expecter of the mock.
func (m *MockPasswordHasher) EXPECT() *MockPasswordHasherExpecter {
	return &MockPasswordHasherExpecter{mock: &m.Mock}
}

// Hash provides a mock function.
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	ret := m.Called(password)
	r0, _ := ret.Get(0).(string)

	return r0, ret.Error(1)
}

// Hash is a helper method to define mock.On call.
func (e *MockPasswordHasherExpecter) Hash(password any) *mock.Call {
	return e.mock.On("Hash", password)
}

// Check provides a mock function.
func (m *MockPasswordHasher) Check(password string, hash string) bool {
	ret := m.Called(password, hash)
	r0, _ := ret.Get(0).(bool)

	return r0
}

// Check is a helper method to define mock.On call.
func (e *MockPasswordHasherExpecter) Check(password any, hash any) *mock.Call {
	return e.mock.On("Check", password, hash)
}
