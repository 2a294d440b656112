package repository

import "context"

// SequenceRepository hands out values of named, strictly increasing counters.
type SequenceRepository interface {
	// NextManagerCodeNumber atomically advances the manager code counter and returns the new value.
	// The counter is seeded from the highest well-formed manager code on first use.
	NextManagerCodeNumber(ctx context.Context) (int64, error)
}
