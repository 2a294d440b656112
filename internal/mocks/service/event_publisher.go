package service

import (
	"context"

	"backoffice/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockEventPublisher is a testify mock of service.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

// MockEventPublisherExpecter registers typed expectations on MockEventPublisher.
type MockEventPublisherExpecter struct {
	mock *mock.Mock
}

// NewMockEventPublisher creates a mock that asserts its expectations when the test ends.
func NewMockEventPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEventPublisher {
	m := &MockEventPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// EXPECT returns the expecter of the mock.
func (m *MockEventPublisher) EXPECT() *MockEventPublisherExpecter {
	return &MockEventPublisherExpecter{mock: &m.Mock}
}

// PublishEntityEvent provides a mock function.
func (m *MockEventPublisher) PublishEntityEvent(ctx context.Context, event *service.EntityEvent) error {
	ret := m.Called(ctx, event)

	return ret.Error(0)
}

// PublishEntityEvent is a helper method to define mock.On call.
func (e *MockEventPublisherExpecter) PublishEntityEvent(ctx any, event any) *mock.Call {
	return e.mock.On("PublishEntityEvent", ctx, event)
}

// Close provides a mock function.
func (m *MockEventPublisher) Close() error {
	ret := m.Called()

	return ret.Error(0)
}

// Close is a helper method to define mock.On call.
func (e *MockEventPublisherExpecter) Close() *mock.Call {
	return e.mock.On("Close")
}
