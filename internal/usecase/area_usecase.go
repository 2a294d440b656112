package usecase

import (
	"context"

	"backoffice/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// DefaultNearRadiusKm is the search radius used when a near query omits one.
const DefaultNearRadiusKm = 10.0

// CreateAreaInput is the draft of a new area. Either coordinates [lon, lat]
// or a GeoJSON location must be given.
type CreateAreaInput struct {
	Name        string           `json:"name" validate:"required,max=255"`
	Description string           `json:"description" validate:"max=2000"`
	Coordinates []float64        `json:"coordinates" validate:"required_without=Location,omitempty,len=2"`
	Location    *entity.Location `json:"location"`
	Country     string           `json:"country" validate:"required,max=100"`
	State       string           `json:"state" validate:"required,max=100"`
	City        string           `json:"city" validate:"required,max=100"`
	ZipCodes    []string         `json:"zipCodes" validate:"omitempty,dive,required,max=20"`
	Active      *bool            `json:"active"`
}

// UpdateAreaInput is a partial patch; nil fields stay unchanged.
type UpdateAreaInput struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=255"`
	Description *string          `json:"description" validate:"omitempty,max=2000"`
	Coordinates []float64        `json:"coordinates" validate:"omitempty,len=2"`
	Location    *entity.Location `json:"location"`
	Country     *string          `json:"country" validate:"omitempty,min=1,max=100"`
	State       *string          `json:"state" validate:"omitempty,min=1,max=100"`
	City        *string          `json:"city" validate:"omitempty,min=1,max=100"`
	ZipCodes    []string         `json:"zipCodes" validate:"omitempty,dive,required,max=20"`
	Active      *bool            `json:"active"`
}

// AreaListInput narrows an area listing. Near restricts results to RadiusKm
// around the point, nearest first.
type AreaListInput struct {
	Active   *bool
	Near     *orb.Point
	RadiusKm float64
	Limit    int
	Offset   int
}

// AreaUsecase defines the area lifecycle.
type AreaUsecase interface {
	CreateArea(ctx context.Context, input *CreateAreaInput) (*entity.Area, error)
	GetArea(ctx context.Context, id uuid.UUID) (*entity.Area, error)
	ListAreas(ctx context.Context, input AreaListInput) ([]*entity.Area, error)
	UpdateArea(ctx context.Context, id uuid.UUID, input *UpdateAreaInput) (*entity.Area, error)
	// DeleteArea removes an area once no manager or service references it.
	DeleteArea(ctx context.Context, id uuid.UUID) error
}
