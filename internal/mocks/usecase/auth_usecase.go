package usecase

import (
	"context"

	"backoffice/internal/domain/entity"
	"backoffice/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAuthUsecase is a testify mock of usecase.AuthUsecase.
type MockAuthUsecase struct {
	mock.Mock
}

// MockAuthUsecaseExpecter registers typed expectations on MockAuthUsecase.
type MockAuthUsecaseExpecter struct {
	mock *mock.Mock
}

// NewMockAuthUsecase creates a mock that asserts its expectations when the test ends.
func NewMockAuthUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAuthUsecase {
	m := &MockAuthUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// EXPECT returns the expecter of the mock.
func (m *MockAuthUsecase) EXPECT() *MockAuthUsecaseExpecter {
	return &MockAuthUsecaseExpecter{mock: &m.Mock}
}

// Register provides a mock function.
func (m *MockAuthUsecase) Register(ctx context.Context, input *usecase.RegisterAdminInput) (*usecase.SessionOutput, error) {
	ret := m.Called(ctx, input)

	var r0 *usecase.SessionOutput
	if v := ret.Get(0); v != nil {
		r0 = v.(*usecase.SessionOutput)
	}

	return r0, ret.Error(1)
}

// Register is a helper method to define mock.On call.
func (e *MockAuthUsecaseExpecter) Register(ctx any, input any) *mock.Call {
	return e.mock.On("Register", ctx, input)
}

// Login provides a mock function.
func (m *MockAuthUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.SessionOutput, error) {
	ret := m.Called(ctx, input)

	var r0 *usecase.SessionOutput
	if v := ret.Get(0); v != nil {
		r0 = v.(*usecase.SessionOutput)
	}

	return r0, ret.Error(1)
}

// Login is a helper method to define mock.On call.
func (e *MockAuthUsecaseExpecter) Login(ctx any, input any) *mock.Call {
	return e.mock.On("Login", ctx, input)
}

// LoginManager provides a mock function.
func (m *MockAuthUsecase) LoginManager(ctx context.Context, input *usecase.LoginInput) (*usecase.SessionOutput, error) {
	ret := m.Called(ctx, input)

	var r0 *usecase.SessionOutput
	if v := ret.Get(0); v != nil {
		r0 = v.(*usecase.SessionOutput)
	}

	return r0, ret.Error(1)
}

// LoginManager is a helper method to define mock.On call.
func (e *MockAuthUsecaseExpecter) LoginManager(ctx any, input any) *mock.Call {
	return e.mock.On("LoginManager", ctx, input)
}

// Me provides a mock function.
func (m *MockAuthUsecase) Me(ctx context.Context, adminID uuid.UUID) (*entity.Admin, error) {
	ret := m.Called(ctx, adminID)

	var r0 *entity.Admin
	if v := ret.Get(0); v != nil {
		r0 = v.(*entity.Admin)
	}

	return r0, ret.Error(1)
}

// Me is a helper method to define mock.On call.
func (e *MockAuthUsecaseExpecter) Me(ctx any, adminID any) *mock.Call {
	return e.mock.On("Me", ctx, adminID)
}
