package repository

import (
	"context"

	"backoffice/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// ErrAreaNotFound is returned when no area matches the lookup.
var ErrAreaNotFound = errors.New("area not found")

// AreaFilter narrows an area listing. Zero values do not filter.
type AreaFilter struct {
	Active *bool
	// Bound restricts results to points inside the box.
	Bound  *orb.Bound
	Limit  int
	Offset int
}

// AreaRepository defines persistence operations for areas.
type AreaRepository interface {
	Create(ctx context.Context, area *entity.Area) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Area, error)

	// LockByID loads the area with a row lock held until the surrounding transaction ends.
	LockByID(ctx context.Context, id uuid.UUID) (*entity.Area, error)

	Find(ctx context.Context, filter AreaFilter) ([]*entity.Area, error)

	Update(ctx context.Context, area *entity.Area) error

	// Delete removes the area. A foreign key violation returns ErrAreaInUse.
	Delete(ctx context.Context, id uuid.UUID) error

	Exists(ctx context.Context, id uuid.UUID) (bool, error)

	Count(ctx context.Context) (int64, error)
}
