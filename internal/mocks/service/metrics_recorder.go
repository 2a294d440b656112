package service

import (
	"github.com/stretchr/testify/mock"
)

// MockMetricsRecorder is a testify mock of service.MetricsRecorder.
type MockMetricsRecorder struct {
	mock.Mock
}

// MockMetricsRecorderExpecter registers typed expectations on MockMetricsRecorder.
type MockMetricsRecorderExpecter struct {
	mock *mock.Mock
}

// NewMockMetricsRecorder creates a mock that asserts its expectations when the test ends.
func NewMockMetricsRecorder(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockMetricsRecorder {
	m := &MockMetricsRecorder{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// EXPECT returns the expecter of the mock.
func (m *MockMetricsRecorder) EXPECT() *MockMetricsRecorderExpecter {
	return &MockMetricsRecorderExpecter{mock: &m.Mock}
}

// ManagerCodeAllocated provides a mock function.
func (m *MockMetricsRecorder) ManagerCodeAllocated() {
	m.Called()
}

// ManagerCodeAllocated is a helper method to define mock.On call.
func (e *MockMetricsRecorderExpecter) ManagerCodeAllocated() *mock.Call {
	return e.mock.On("ManagerCodeAllocated")
}

// ManagerCodeCollision provides a mock function.
func (m *MockMetricsRecorder) ManagerCodeCollision() {
	m.Called()
}

// ManagerCodeCollision is a helper method to define mock.On call.
func (e *MockMetricsRecorderExpecter) ManagerCodeCollision() *mock.Call {
	return e.mock.On("ManagerCodeCollision")
}

// AreaDeleteBlocked provides a mock function.
func (m *MockMetricsRecorder) AreaDeleteBlocked(reason string) {
	m.Called(reason)
}

// AreaDeleteBlocked is a helper method to define mock.On call.
func (e *MockMetricsRecorderExpecter) AreaDeleteBlocked(reason any) *mock.Call {
	return e.mock.On("AreaDeleteBlocked", reason)
}

// EventPublishFailed provides a mock function.
func (m *MockMetricsRecorder) EventPublishFailed(eventType string) {
	m.Called(eventType)
}

// EventPublishFailed is a helper method to define mock.On call.
func (e *MockMetricsRecorderExpecter) EventPublishFailed(eventType any) *mock.Call {
	return e.mock.On("EventPublishFailed", eventType)
}
