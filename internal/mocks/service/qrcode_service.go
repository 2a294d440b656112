package service

import (
	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockQRCodeService is a testify mock of service.QRCodeService.
type MockQRCodeService struct {
	mock.Mock
}

// MockQRCodeServiceExpecter registers typed expectations on MockQRCodeService.
type MockQRCodeServiceExpecter struct {
	mock *mock.Mock
}

// NewMockQRCodeService creates a mock that asserts its expectations when the test ends.
func NewMockQRCodeService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockQRCodeService {
	m := &MockQRCodeService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// EXPECT returns the expecter of the mock.
func (m *MockQRCodeService) EXPECT() *MockQRCodeServiceExpecter {
	return &MockQRCodeServiceExpecter{mock: &m.Mock}
}

// GenerateManagerBadge provides a mock function.
func (m *MockQRCodeService) GenerateManagerBadge(manager *entity.Manager) ([]byte, error) {
	ret := m.Called(manager)

	var r0 []byte
	if v := ret.Get(0); v != nil {
		r0 = v.([]byte)
	}

	return r0, ret.Error(1)
}

// GenerateManagerBadge is a helper method to define mock.On call.
func (e *MockQRCodeServiceExpecter) GenerateManagerBadge(manager any) *mock.Call {
	return e.mock.On("GenerateManagerBadge", manager)
}

// ParseManagerBadge provides a mock function.
func (m *MockQRCodeService) ParseManagerBadge(qrData string) (*service.ManagerBadge, error) {
	ret := m.Called(qrData)

	var r0 *service.ManagerBadge
	if v := ret.Get(0); v != nil {
		r0 = v.(*service.ManagerBadge)
	}

	return r0, ret.Error(1)
}

// ParseManagerBadge is a helper method to define mock.On call.
func (e *MockQRCodeServiceExpecter) ParseManagerBadge(qrData any) *mock.Call {
	return e.mock.On("ParseManagerBadge", qrData)
}
