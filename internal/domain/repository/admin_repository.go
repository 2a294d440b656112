// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"backoffice/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrAdminNotFound is returned when no admin matches the lookup.
var ErrAdminNotFound = errors.New("admin not found")

// AdminRepository defines persistence operations for operator accounts.
type AdminRepository interface {
	// Create persists a new admin. A case-insensitive email collision returns ErrDuplicateEmail.
	Create(ctx context.Context, admin *entity.Admin) error

	// FindByID retrieves an admin by id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error)

	// FindByEmail retrieves an admin by normalized email.
	FindByEmail(ctx context.Context, email string) (*entity.Admin, error)

	// Update writes name, email, password hash and role of an existing admin.
	Update(ctx context.Context, admin *entity.Admin) error

	// Count returns the number of admins.
	Count(ctx context.Context) (int64, error)
}
