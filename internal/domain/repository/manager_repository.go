package repository

import (
	"context"

	"backoffice/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrManagerNotFound is returned when no manager matches the lookup.
var ErrManagerNotFound = errors.New("manager not found")

// ManagerFilter narrows a manager listing. Zero values do not filter.
type ManagerFilter struct {
	AreaID *uuid.UUID
	Status *entity.ManagerStatus
	Limit  int
	Offset int
}

// ManagerRepository defines persistence operations for managers.
type ManagerRepository interface {
	// Create inserts a manager. A manager_code collision returns ErrManagerCodeTaken,
	// an email collision ErrDuplicateEmail and a dangling area ErrInvalidReference.
	Create(ctx context.Context, manager *entity.Manager) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Manager, error)

	// FindByEmail retrieves a manager by normalized email.
	FindByEmail(ctx context.Context, email string) (*entity.Manager, error)

	// Find returns one page of managers ordered by manager code.
	Find(ctx context.Context, filter ManagerFilter) ([]*entity.Manager, error)

	// Update writes every mutable column of an existing manager.
	Update(ctx context.Context, manager *entity.Manager) error

	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByArea reports whether any manager is assigned to the area.
	ExistsByArea(ctx context.Context, areaID uuid.UUID) (bool, error)

	Count(ctx context.Context) (int64, error)

	// CountByStatus returns the number of managers per status.
	CountByStatus(ctx context.Context) (map[entity.ManagerStatus]int64, error)
}
