package repository

import (
	"context"

	"backoffice/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrOfferingNotFound is returned when no service offering matches the lookup.
var ErrOfferingNotFound = errors.New("service not found")

// OfferingFilter narrows a service listing. Zero values do not filter.
type OfferingFilter struct {
	AreaID   *uuid.UUID
	Category *entity.Category
	Active   *bool
	Limit    int
	Offset   int
}

// AreaServiceCount is the number of services offered in one area.
type AreaServiceCount struct {
	AreaID   uuid.UUID `json:"areaId"`
	AreaName string    `json:"areaName"`
	Count    int64     `json:"count"`
}

// OfferingRepository defines persistence operations for service offerings.
type OfferingRepository interface {
	Create(ctx context.Context, offering *entity.Offering) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Offering, error)

	Find(ctx context.Context, filter OfferingFilter) ([]*entity.Offering, error)

	Update(ctx context.Context, offering *entity.Offering) error

	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByArea reports whether any service is offered in the area.
	ExistsByArea(ctx context.Context, areaID uuid.UUID) (bool, error)

	Count(ctx context.Context) (int64, error)

	// CountByArea returns the number of services per area, largest first.
	CountByArea(ctx context.Context) ([]AreaServiceCount, error)
}
