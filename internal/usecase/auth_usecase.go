package usecase

import (
	"context"
	"time"

	"backoffice/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterAdminInput defines the data required to register a new admin.
type RegisterAdminInput struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,max=72"`
}

// LoginInput defines the credentials of an admin or manager login.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SessionOutput is returned after a successful registration or login.
type SessionOutput struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expiresAt"`
	Admin     *entity.Admin   `json:"admin,omitempty"`
	Manager   *entity.Manager `json:"manager,omitempty"`
}

// AuthUsecase defines registration, login and identity lookups.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterAdminInput) (*SessionOutput, error)
	Login(ctx context.Context, input *LoginInput) (*SessionOutput, error)
	LoginManager(ctx context.Context, input *LoginInput) (*SessionOutput, error)
	Me(ctx context.Context, adminID uuid.UUID) (*entity.Admin, error)
}
