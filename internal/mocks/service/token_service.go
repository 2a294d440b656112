package service

import (
	"time"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockTokenService is a testify mock of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

// MockTokenServiceExpecter registers typed expectations on MockTokenService.
type MockTokenServiceExpecter struct {
	mock *mock.Mock
}

// NewMockTokenService creates a mock that asserts its expectations when the test ends.
func NewMockTokenService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// EXPECT returns the expecter of the mock.
func (m *MockTokenService) EXPECT() *MockTokenServiceExpecter {
	return &MockTokenServiceExpecter{mock: &m.Mock}
}

// Issue provides a mock function.
func (m *MockTokenService) Issue(subjectID uuid.UUID, role entity.Role) (*service.IssuedToken, error) {
	ret := m.Called(subjectID, role)

	var r0 *service.IssuedToken
	if v := ret.Get(0); v != nil {
		r0 = v.(*service.IssuedToken)
	}

	return r0, ret.Error(1)
}

// Issue is a helper method to define mock.On call.
func (e *MockTokenServiceExpecter) Issue(subjectID any, role any) *mock.Call {
	return e.mock.On("Issue", subjectID, role)
}

// Verify provides a mock function.
func (m *MockTokenService) Verify(token string) (*service.Claims, error) {
	ret := m.Called(token)

	var r0 *service.Claims
	if v := ret.Get(0); v != nil {
		r0 = v.(*service.Claims)
	}

	return r0, ret.Error(1)
}

// Verify is a helper method to define mock.On call.
func (e *MockTokenServiceExpecter) Verify(token any) *mock.Call {
	return e.mock.On("Verify", token)
}

// TTL provides a mock function.
func (m *MockTokenService) TTL() time.Duration {
	ret := m.Called()
	r0, _ := ret.Get(0).(time.Duration)

	return r0
}

// TTL is a helper method to define mock.On call.
func (e *MockTokenServiceExpecter) TTL() *mock.Call {
	return e.mock.On("TTL")
}
