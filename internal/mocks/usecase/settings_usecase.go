package usecase

import (
	"context"

	"backoffice/internal/domain/entity"
	"backoffice/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockSettingsUsecase is a testify mock of usecase.SettingsUsecase.
type MockSettingsUsecase struct {
	mock.Mock
}

// MockSettingsUsecaseExpecter registers typed expectations on MockSettingsUsecase.
type MockSettingsUsecaseExpecter struct {
	mock *mock.Mock
}

// NewMockSettingsUsecase creates a mock that asserts its expectations when the test ends.
func NewMockSettingsUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSettingsUsecase {
	m := &MockSettingsUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// EXPECT returns the expecter of the mock.
func (m *MockSettingsUsecase) EXPECT() *MockSettingsUsecaseExpecter {
	return &MockSettingsUsecaseExpecter{mock: &m.Mock}
}

// GetSettings provides a mock function.
func (m *MockSettingsUsecase) GetSettings(ctx context.Context, adminID uuid.UUID) (*entity.Admin, error) {
	ret := m.Called(ctx, adminID)

	var r0 *entity.Admin
	if v := ret.Get(0); v != nil {
		r0 = v.(*entity.Admin)
	}

	return r0, ret.Error(1)
}

// GetSettings is a helper method to define mock.On call.
func (e *MockSettingsUsecaseExpecter) GetSettings(ctx any, adminID any) *mock.Call {
	return e.mock.On("GetSettings", ctx, adminID)
}

// UpdateSettings provides a mock function.
func (m *MockSettingsUsecase) UpdateSettings(ctx context.Context, adminID uuid.UUID, input *usecase.UpdateSettingsInput) (*entity.Admin, error) {
	ret := m.Called(ctx, adminID, input)

	var r0 *entity.Admin
	if v := ret.Get(0); v != nil {
		r0 = v.(*entity.Admin)
	}

	return r0, ret.Error(1)
}

// UpdateSettings is a helper method to define mock.On call.
func (e *MockSettingsUsecaseExpecter) UpdateSettings(ctx any, adminID any, input any) *mock.Call {
	return e.mock.On("UpdateSettings", ctx, adminID, input)
}

// ChangePassword provides a mock function.
func (m *MockSettingsUsecase) ChangePassword(ctx context.Context, adminID uuid.UUID, input *usecase.ChangePasswordInput) error {
	ret := m.Called(ctx, adminID, input)

	return ret.Error(0)
}

// ChangePassword is a helper method to define mock.On call.
func (e *MockSettingsUsecaseExpecter) ChangePassword(ctx any, adminID any, input any) *mock.Call {
	return e.mock.On("ChangePassword", ctx, adminID, input)
}
