package service

import (
	"context"
	"time"
)

// Entity event types published after successful mutations.
const (
	EventManagerCreated  = "manager.created"
	EventManagerUpdated  = "manager.updated"
	EventManagerDeleted  = "manager.deleted"
	EventAreaCreated     = "area.created"
	EventAreaUpdated     = "area.updated"
	EventAreaDeleted     = "area.deleted"
	EventServiceCreated  = "service.created"
	EventServiceUpdated  = "service.updated"
	EventServiceDeleted  = "service.deleted"
	EventAdminRegistered = "admin.registered"
)

// EntityEvent describes a committed change to a back office entity.
type EntityEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	Type       string    `json:"type"`
	EntityID   string    `json:"entity_id"`
	ActorID    string    `json:"actor_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishEntityEvent publishes an entity lifecycle event
	PublishEntityEvent(ctx context.Context, event *EntityEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
