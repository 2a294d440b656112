package usecase

import (
	"context"

	"backoffice/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateOfferingInput is the draft of a new service offering.
type CreateOfferingInput struct {
	Name              string           `json:"name" validate:"required,max=255"`
	Description       string           `json:"description" validate:"max=2000"`
	AreaID            uuid.UUID        `json:"areaId" validate:"required"`
	Category          entity.Category  `json:"category" validate:"required,oneof=farm_maintenance home_cleaning house_painting blight_removal tree_services other"`
	BasePrice         *float64         `json:"basePrice" validate:"required,gte=0,lte=9999999999.99"`
	PriceUnit         entity.PriceUnit `json:"priceUnit" validate:"required,oneof=per_hour per_square_meter per_job"`
	Active            *bool            `json:"active"`
	RequiredSkills    []string         `json:"requiredSkills" validate:"omitempty,dive,required,max=100"`
	EstimatedDuration *float64         `json:"estimatedDuration" validate:"required,gt=0,lte=999999.99"`
}

// UpdateOfferingInput is a partial patch; nil fields stay unchanged.
type UpdateOfferingInput struct {
	Name              *string           `json:"name" validate:"omitempty,min=1,max=255"`
	Description       *string           `json:"description" validate:"omitempty,max=2000"`
	AreaID            *uuid.UUID        `json:"areaId"`
	Category          *entity.Category  `json:"category" validate:"omitempty,oneof=farm_maintenance home_cleaning house_painting blight_removal tree_services other"`
	BasePrice         *float64          `json:"basePrice" validate:"omitempty,gte=0,lte=9999999999.99"`
	PriceUnit         *entity.PriceUnit `json:"priceUnit" validate:"omitempty,oneof=per_hour per_square_meter per_job"`
	Active            *bool             `json:"active"`
	RequiredSkills    []string          `json:"requiredSkills" validate:"omitempty,dive,required,max=100"`
	EstimatedDuration *float64          `json:"estimatedDuration" validate:"omitempty,gt=0,lte=999999.99"`
}

// OfferingListInput narrows a service listing.
type OfferingListInput struct {
	AreaID   *uuid.UUID
	Category *entity.Category
	Active   *bool
	Limit    int
	Offset   int
}

// OfferingUsecase defines the lifecycle of service offerings.
type OfferingUsecase interface {
	CreateOffering(ctx context.Context, input *CreateOfferingInput) (*entity.Offering, error)
	GetOffering(ctx context.Context, id uuid.UUID) (*entity.Offering, error)
	ListOfferings(ctx context.Context, input OfferingListInput) ([]*entity.Offering, error)
	UpdateOffering(ctx context.Context, id uuid.UUID, input *UpdateOfferingInput) (*entity.Offering, error)
	DeleteOffering(ctx context.Context, id uuid.UUID) error
}
