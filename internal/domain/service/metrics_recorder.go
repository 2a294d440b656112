package service

// MetricsRecorder receives business counters from the use case layer.
type MetricsRecorder interface {
	ManagerCodeAllocated()
	ManagerCodeCollision()
	AreaDeleteBlocked(reason string)
	EventPublishFailed(eventType string)
}
