package usecase

import (
	"context"

	"backoffice/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateSettingsInput changes the signed-in admin's profile.
type UpdateSettingsInput struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=255"`
	Email *string `json:"email" validate:"omitempty,email,max=255"`
}

// ChangePasswordInput replaces the signed-in admin's password.
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,max=72"`
}

// SettingsUsecase lets an admin maintain their own account.
type SettingsUsecase interface {
	GetSettings(ctx context.Context, adminID uuid.UUID) (*entity.Admin, error)
	UpdateSettings(ctx context.Context, adminID uuid.UUID, input *UpdateSettingsInput) (*entity.Admin, error)
	ChangePassword(ctx context.Context, adminID uuid.UUID, input *ChangePasswordInput) error
}
