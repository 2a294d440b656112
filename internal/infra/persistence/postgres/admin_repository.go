package postgres

import (
	"context"
	"time"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// adminRepository implements the domain.AdminRepository interface.
type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository is the constructor for adminRepository.
func NewAdminRepository(db *gorm.DB) repository.AdminRepository {
	return &adminRepository{db: db}
}

// Create persists a new admin.
func (repo *adminRepository) Create(ctx context.Context, admin *entity.Admin) error {
	adminM := fromAdminDomain(admin)

	if err := repo.db.WithContext(ctx).Create(adminM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateEmail.WrapMessage("admin email already registered")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create admin")
	}

	admin.CreatedAt = adminM.CreatedAt
	admin.UpdatedAt = adminM.UpdatedAt

	return nil
}

// FindByID retrieves an admin by id.
func (repo *adminRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindByEmail retrieves an admin by normalized email.
func (repo *adminRepository) FindByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	return repo.findOne(ctx, "lower(email) = ?", entity.NormalizeEmail(email))
}

func (repo *adminRepository) findOne(ctx context.Context, query string, arg any) (*entity.Admin, error) {
	var adminM model.AdminModel
	if err := repo.db.WithContext(ctx).Where(query, arg).First(&adminM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find admin")
	}

	return toAdminDomain(&adminM), nil
}

// Update writes the mutable columns of an existing admin.
func (repo *adminRepository) Update(ctx context.Context, admin *entity.Admin) error {
	admin.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.AdminModel{}).
		Where("id = ?", admin.ID).
		Updates(map[string]any{
			"name":          admin.Name,
			"email":         admin.Email,
			"password_hash": admin.PasswordHash,
			"role":          string(admin.Role),
			"updated_at":    admin.UpdatedAt,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrDuplicateEmail.WrapMessage("admin email already registered")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update admin")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAdminNotFound
	}

	return nil
}

// Count returns the number of admins.
func (repo *adminRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.AdminModel{}).Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count admins")
	}

	return count, nil
}

func fromAdminDomain(admin *entity.Admin) *model.AdminModel {
	return &model.AdminModel{
		ID:           admin.ID,
		Name:         admin.Name,
		Email:        admin.Email,
		PasswordHash: admin.PasswordHash,
		Role:         string(admin.Role),
		CreatedAt:    admin.CreatedAt,
		UpdatedAt:    admin.UpdatedAt,
	}
}

func toAdminDomain(adminM *model.AdminModel) *entity.Admin {
	return &entity.Admin{
		ID:           adminM.ID,
		Name:         adminM.Name,
		Email:        adminM.Email,
		PasswordHash: adminM.PasswordHash,
		Role:         entity.Role(adminM.Role),
		CreatedAt:    adminM.CreatedAt,
		UpdatedAt:    adminM.UpdatedAt,
	}
}
