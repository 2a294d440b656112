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

// managerRepository implements the domain.ManagerRepository interface.
type managerRepository struct {
	db *gorm.DB
}

// NewManagerRepository is the constructor for managerRepository.
func NewManagerRepository(db *gorm.DB) repository.ManagerRepository {
	return &managerRepository{db: db}
}

// Create inserts a manager in a single statement.
func (repo *managerRepository) Create(ctx context.Context, manager *entity.Manager) error {
	managerM := fromManagerDomain(manager)

	if err := repo.db.WithContext(ctx).Create(managerM).Error; err != nil {
		return mapManagerWriteError(err, "failed to create manager")
	}

	manager.CreatedAt = managerM.CreatedAt
	manager.UpdatedAt = managerM.UpdatedAt

	return nil
}

// FindByID retrieves a manager by id.
func (repo *managerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Manager, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindByEmail retrieves a manager by normalized email.
func (repo *managerRepository) FindByEmail(ctx context.Context, email string) (*entity.Manager, error) {
	return repo.findOne(ctx, "lower(email) = ?", entity.NormalizeEmail(email))
}

func (repo *managerRepository) findOne(ctx context.Context, query string, arg any) (*entity.Manager, error) {
	var managerM model.ManagerModel
	if err := repo.db.WithContext(ctx).Where(query, arg).First(&managerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrManagerNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find manager")
	}

	return toManagerDomain(&managerM), nil
}

// Find returns one page of managers ordered by the numeric part of their code.
func (repo *managerRepository) Find(ctx context.Context, filter repository.ManagerFilter) ([]*entity.Manager, error) {
	query := repo.db.WithContext(ctx).Model(&model.ManagerModel{})
	if filter.AreaID != nil {
		query = query.Where("assigned_area_id = ?", *filter.AreaID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	query = paginate(query, filter.Limit, filter.Offset)

	var managerModels []*model.ManagerModel
	if err := query.Order("length(manager_code), manager_code").Find(&managerModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list managers")
	}

	managers := make([]*entity.Manager, 0, len(managerModels))
	for _, managerM := range managerModels {
		managers = append(managers, toManagerDomain(managerM))
	}

	return managers, nil
}

// Update writes every mutable column of an existing manager.
func (repo *managerRepository) Update(ctx context.Context, manager *entity.Manager) error {
	manager.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.ManagerModel{}).
		Where("id = ?", manager.ID).
		Updates(map[string]any{
			"first_name":       manager.FirstName,
			"last_name":        manager.LastName,
			"email":            manager.Email,
			"password_hash":    manager.PasswordHash,
			"phone":            manager.Phone,
			"assigned_area_id": manager.AssignedAreaID,
			"status":           string(manager.Status),
			"updated_at":       manager.UpdatedAt,
		})
	if result.Error != nil {
		return mapManagerWriteError(result.Error, "failed to update manager")
	}
	if result.RowsAffected == 0 {
		return repository.ErrManagerNotFound
	}

	return nil
}

// Delete removes a manager by id.
func (repo *managerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ManagerModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete manager")
	}
	if result.RowsAffected == 0 {
		return repository.ErrManagerNotFound
	}

	return nil
}

// ExistsByArea reports whether any manager is assigned to the area.
func (repo *managerRepository) ExistsByArea(ctx context.Context, areaID uuid.UUID) (bool, error) {
	var exists bool
	err := repo.db.WithContext(ctx).
		Raw("SELECT EXISTS(SELECT 1 FROM managers WHERE assigned_area_id = ?)", areaID).
		Scan(&exists).Error
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check managers for area")
	}

	return exists, nil
}

// Count returns the number of managers.
func (repo *managerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.ManagerModel{}).Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count managers")
	}

	return count, nil
}

type statusCountRow struct {
	Status string
	Total  int64
}

// CountByStatus returns the number of managers per status.
func (repo *managerRepository) CountByStatus(ctx context.Context) (map[entity.ManagerStatus]int64, error) {
	var rows []statusCountRow
	err := repo.db.WithContext(ctx).
		Raw("SELECT status, COUNT(*) AS total FROM managers GROUP BY status").
		Scan(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to count managers by status")
	}

	counts := make(map[entity.ManagerStatus]int64, len(rows))
	for _, row := range rows {
		counts[entity.ManagerStatus(row.Status)] = row.Total
	}

	return counts, nil
}

func mapManagerWriteError(err error, details string) error {
	if isUniqueConstraintViolation(err) {
		switch violatedConstraint(err) {
		case constraintManagersManagerCode:
			return domainerrors.ErrManagerCodeTaken
		case constraintManagersEmail:
			return domainerrors.ErrDuplicateEmail.WrapMessage("manager email already registered")
		}

		return domainerrors.ErrDuplicateEmail.WrapMessage(details)
	}
	if isForeignKeyConstraintViolation(err) {
		return domainerrors.ErrInvalidReference.WithDetails("assignedArea does not reference an existing area")
	}
	if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
		return domainerrors.ErrValidationFailed.WithDetails(details)
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

func fromManagerDomain(manager *entity.Manager) *model.ManagerModel {
	return &model.ManagerModel{
		ID:             manager.ID,
		ManagerCode:    manager.ManagerCode,
		FirstName:      manager.FirstName,
		LastName:       manager.LastName,
		Email:          manager.Email,
		PasswordHash:   manager.PasswordHash,
		Phone:          manager.Phone,
		AssignedAreaID: manager.AssignedAreaID,
		Status:         string(manager.Status),
		CreatedAt:      manager.CreatedAt,
		UpdatedAt:      manager.UpdatedAt,
	}
}

func toManagerDomain(managerM *model.ManagerModel) *entity.Manager {
	return &entity.Manager{
		ID:             managerM.ID,
		ManagerCode:    managerM.ManagerCode,
		FirstName:      managerM.FirstName,
		LastName:       managerM.LastName,
		Email:          managerM.Email,
		PasswordHash:   managerM.PasswordHash,
		Phone:          managerM.Phone,
		AssignedAreaID: managerM.AssignedAreaID,
		Status:         entity.ManagerStatus(managerM.Status),
		CreatedAt:      managerM.CreatedAt,
		UpdatedAt:      managerM.UpdatedAt,
	}
}
