package impl

import (
	"context"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"
	"backoffice/internal/domain/service"
	"backoffice/internal/usecase"

	"github.com/pkg/errors"
)

// sequenceAllocator implements the SequenceAllocator interface on top of the
// atomic counter kept by the sequence repository.
type sequenceAllocator struct {
	sequenceRepo repository.SequenceRepository
	metrics      service.MetricsRecorder
}

// NewSequenceAllocator is the constructor for sequenceAllocator.
func NewSequenceAllocator(sequenceRepo repository.SequenceRepository, metrics service.MetricsRecorder) usecase.SequenceAllocator {
	return &sequenceAllocator{
		sequenceRepo: sequenceRepo,
		metrics:      metrics,
	}
}

// NextManagerCode does not retry; a storage failure fails the caller's request.
func (a *sequenceAllocator) NextManagerCode(ctx context.Context) (string, error) {
	n, err := a.sequenceRepo.NextManagerCodeNumber(ctx)
	if err != nil {
		return "", errors.Wrap(err, "failed to allocate manager code")
	}
	a.metrics.ManagerCodeAllocated()

	return entity.FormatManagerCode(n), nil
}
