package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/service"

	"github.com/google/uuid"
)

// eventEmitter publishes entity events after a mutation has been committed.
// Publishing is best effort: failures are logged and counted, never returned.
type eventEmitter struct {
	publisher service.EventPublisher
	metrics   service.MetricsRecorder
	logger    *slog.Logger
}

func newEventEmitter(publisher service.EventPublisher, metrics service.MetricsRecorder, logger *slog.Logger) *eventEmitter {
	return &eventEmitter{
		publisher: publisher,
		metrics:   metrics,
		logger:    logger,
	}
}

func (e *eventEmitter) emit(ctx context.Context, eventType string, entityID uuid.UUID) {
	event := &service.EntityEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		EntityID:   entityID.String(),
		OccurredAt: time.Now().UTC(),
	}
	if actorID, ok := deliverycontext.GetActorIDFromContext(ctx); ok {
		event.ActorID = actorID.String()
	}

	if err := e.publisher.PublishEntityEvent(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, e.logger).Warn("Failed to publish entity event",
			slog.String("event_type", eventType),
			slog.String("entity_id", event.EntityID),
			slog.Any("error", err),
		)
		e.metrics.EventPublishFailed(eventType)
	}
}
