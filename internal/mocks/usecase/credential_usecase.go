package usecase

import (
	"context"

	"backoffice/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockCredentialUsecase is a testify mock of usecase.CredentialUsecase.
type MockCredentialUsecase struct {
	mock.Mock
}

// MockCredentialUsecaseExpecter registers typed expectations on MockCredentialUsecase.
type MockCredentialUsecaseExpecter struct {
	mock *mock.Mock
}

// NewMockCredentialUsecase creates a mock that asserts its expectations when the test ends.
func NewMockCredentialUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCredentialUsecase {
	m := &MockCredentialUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// EXPECT returns the expecter of the mock.
func (m *MockCredentialUsecase) EXPECT() *MockCredentialUsecaseExpecter {
	return &MockCredentialUsecaseExpecter{mock: &m.Mock}
}

// Hash provides a mock function.
func (m *MockCredentialUsecase) Hash(plaintext string) (string, error) {
	ret := m.Called(plaintext)
	r0, _ := ret.Get(0).(string)

	return r0, ret.Error(1)
}

// Hash is a helper method to define mock.On call.
func (e *MockCredentialUsecaseExpecter) Hash(plaintext any) *mock.Call {
	return e.mock.On("Hash", plaintext)
}

// Verify provides a mock function.
func (m *MockCredentialUsecase) Verify(plaintext string, digest string) bool {
	ret := m.Called(plaintext, digest)
	r0, _ := ret.Get(0).(bool)

	return r0
}

// Verify is a helper method to define mock.On call.
func (e *MockCredentialUsecaseExpecter) Verify(plaintext any, digest any) *mock.Call {
	return e.mock.On("Verify", plaintext, digest)
}

// AssertUniqueEmail provides a mock function.
func (m *MockCredentialUsecase) AssertUniqueEmail(ctx context.Context, kind entity.AccountKind, email string, excludeID *uuid.UUID) error {
	ret := m.Called(ctx, kind, email, excludeID)

	return ret.Error(0)
}

// AssertUniqueEmail is a helper method to define mock.On call.
func (e *MockCredentialUsecaseExpecter) AssertUniqueEmail(ctx any, kind any, email any, excludeID any) *mock.Call {
	return e.mock.On("AssertUniqueEmail", ctx, kind, email, excludeID)
}

// MockSequenceAllocator is a testify mock of usecase.SequenceAllocator.
type MockSequenceAllocator struct {
	mock.Mock
}

// MockSequenceAllocatorExpecter registers typed expectations on MockSequenceAllocator.
type MockSequenceAllocatorExpecter struct {
	mock *mock.Mock
}

// NewMockSequenceAllocator creates a mock that asserts its expectations when the test ends.
func NewMockSequenceAllocator(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSequenceAllocator {
	m := &MockSequenceAllocator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// EXPECT returns the expecter of the mock.
func (m *MockSequenceAllocator) EXPECT() *MockSequenceAllocatorExpecter {
	return &MockSequenceAllocatorExpecter{mock: &m.Mock}
}

// NextManagerCode provides a mock function.
func (m *MockSequenceAllocator) NextManagerCode(ctx context.Context) (string, error) {
	ret := m.Called(ctx)
	r0, _ := ret.Get(0).(string)

	return r0, ret.Error(1)
}

// NextManagerCode is a helper method to define mock.On call.
func (e *MockSequenceAllocatorExpecter) NextManagerCode(ctx any) *mock.Call {
	return e.mock.On("NextManagerCode", ctx)
}

// MockIntegrityGuard is a testify mock of usecase.IntegrityGuard.
type MockIntegrityGuard struct {
	mock.Mock
}

// MockIntegrityGuardExpecter registers typed expectations on MockIntegrityGuard.
type MockIntegrityGuardExpecter struct {
	mock *mock.Mock
}

// NewMockIntegrityGuard creates a mock that asserts its expectations when the test ends.
func NewMockIntegrityGuard(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockIntegrityGuard {
	m := &MockIntegrityGuard{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// EXPECT returns the expecter of the mock.
func (m *MockIntegrityGuard) EXPECT() *MockIntegrityGuardExpecter {
	return &MockIntegrityGuardExpecter{mock: &m.Mock}
}

// CanDeleteArea provides a mock function.
func (m *MockIntegrityGuard) CanDeleteArea(ctx context.Context, areaID uuid.UUID) error {
	ret := m.Called(ctx, areaID)

	return ret.Error(0)
}

// CanDeleteArea is a helper method to define mock.On call.
func (e *MockIntegrityGuardExpecter) CanDeleteArea(ctx any, areaID any) *mock.Call {
	return e.mock.On("CanDeleteArea", ctx, areaID)
}
