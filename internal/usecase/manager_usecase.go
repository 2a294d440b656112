package usecase

import (
	"context"

	"backoffice/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateManagerInput is the draft of a new manager.
type CreateManagerInput struct {
	FirstName    string               `json:"firstName" validate:"required,max=100"`
	LastName     string               `json:"lastName" validate:"required,max=100"`
	Email        string               `json:"email" validate:"required,email,max=255"`
	Password     string               `json:"password" validate:"required,max=72"`
	Phone        string               `json:"phone" validate:"required,phone10"`
	AssignedArea uuid.UUID            `json:"assignedArea" validate:"required"`
	Status       entity.ManagerStatus `json:"status" validate:"omitempty,oneof=active inactive suspended"`
}

// UpdateManagerInput is a partial patch; nil fields stay unchanged.
type UpdateManagerInput struct {
	FirstName    *string               `json:"firstName" validate:"omitempty,min=1,max=100"`
	LastName     *string               `json:"lastName" validate:"omitempty,min=1,max=100"`
	Email        *string               `json:"email" validate:"omitempty,email,max=255"`
	Password     *string               `json:"password" validate:"omitempty,min=1,max=72"`
	Phone        *string               `json:"phone" validate:"omitempty,phone10"`
	AssignedArea *uuid.UUID            `json:"assignedArea"`
	Status       *entity.ManagerStatus `json:"status" validate:"omitempty,oneof=active inactive suspended"`
}

// VerifyBadgeInput carries the raw text scanned from a manager badge.
type VerifyBadgeInput struct {
	Data string `json:"data" validate:"required,max=1024"`
}

// ManagerListInput narrows a manager listing.
type ManagerListInput struct {
	AreaID *uuid.UUID
	Status *entity.ManagerStatus
	Limit  int
	Offset int
}

// ManagerUsecase defines the manager lifecycle.
type ManagerUsecase interface {
	CreateManager(ctx context.Context, input *CreateManagerInput) (*entity.Manager, error)
	GetManager(ctx context.Context, id uuid.UUID) (*entity.Manager, error)
	ListManagers(ctx context.Context, input ManagerListInput) ([]*entity.Manager, error)
	UpdateManager(ctx context.Context, id uuid.UUID, input *UpdateManagerInput) (*entity.Manager, error)
	DeleteManager(ctx context.Context, id uuid.UUID) error
	// ManagerBadge renders the manager's badge as a PNG QR code.
	ManagerBadge(ctx context.Context, id uuid.UUID) ([]byte, error)
	// VerifyBadge resolves scanned badge data to the manager it was issued for.
	VerifyBadge(ctx context.Context, input *VerifyBadgeInput) (*entity.Manager, error)
}
