package postgres

import (
	"context"
	"time"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// offeringRepository implements the domain.OfferingRepository interface on the 'services' table.
type offeringRepository struct {
	db *gorm.DB
}

// NewOfferingRepository is the constructor for offeringRepository.
func NewOfferingRepository(db *gorm.DB) repository.OfferingRepository {
	return &offeringRepository{db: db}
}

// Create persists a new service offering.
func (repo *offeringRepository) Create(ctx context.Context, offering *entity.Offering) error {
	offeringM := fromOfferingDomain(offering)

	if err := repo.db.WithContext(ctx).Create(offeringM).Error; err != nil {
		return mapOfferingWriteError(err, "failed to create service")
	}

	offering.CreatedAt = offeringM.CreatedAt
	offering.UpdatedAt = offeringM.UpdatedAt

	return nil
}

// FindByID retrieves a service offering by id.
func (repo *offeringRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Offering, error) {
	var offeringM model.OfferingModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&offeringM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOfferingNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find service")
	}

	return toOfferingDomain(&offeringM), nil
}

// Find returns one page of service offerings ordered by name.
func (repo *offeringRepository) Find(ctx context.Context, filter repository.OfferingFilter) ([]*entity.Offering, error) {
	query := repo.db.WithContext(ctx).Model(&model.OfferingModel{})
	if filter.AreaID != nil {
		query = query.Where("area_id = ?", *filter.AreaID)
	}
	if filter.Category != nil {
		query = query.Where("category = ?", string(*filter.Category))
	}
	if filter.Active != nil {
		query = query.Where("active = ?", *filter.Active)
	}
	query = paginate(query, filter.Limit, filter.Offset)

	var offeringModels []*model.OfferingModel
	if err := query.Order("name, id").Find(&offeringModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list services")
	}

	offerings := make([]*entity.Offering, 0, len(offeringModels))
	for _, offeringM := range offeringModels {
		offerings = append(offerings, toOfferingDomain(offeringM))
	}

	return offerings, nil
}

// Update writes every mutable column of an existing service offering.
func (repo *offeringRepository) Update(ctx context.Context, offering *entity.Offering) error {
	offering.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.OfferingModel{}).
		Where("id = ?", offering.ID).
		Updates(map[string]any{
			"name":               offering.Name,
			"description":        offering.Description,
			"area_id":            offering.AreaID,
			"category":           string(offering.Category),
			"base_price":         offering.BasePrice,
			"price_unit":         string(offering.PriceUnit),
			"active":             offering.Active,
			"required_skills":    pq.StringArray(skills(offering.RequiredSkills)),
			"estimated_duration": offering.EstimatedDuration,
			"updated_at":         offering.UpdatedAt,
		})
	if result.Error != nil {
		return mapOfferingWriteError(result.Error, "failed to update service")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOfferingNotFound
	}

	return nil
}

// Delete removes a service offering by id.
func (repo *offeringRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.OfferingModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete service")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOfferingNotFound
	}

	return nil
}

// ExistsByArea reports whether any service is offered in the area.
func (repo *offeringRepository) ExistsByArea(ctx context.Context, areaID uuid.UUID) (bool, error) {
	var exists bool
	err := repo.db.WithContext(ctx).
		Raw("SELECT EXISTS(SELECT 1 FROM services WHERE area_id = ?)", areaID).
		Scan(&exists).Error
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check services for area")
	}

	return exists, nil
}

// Count returns the number of service offerings.
func (repo *offeringRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.OfferingModel{}).Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count services")
	}

	return count, nil
}

type areaCountRow struct {
	AreaID   uuid.UUID
	AreaName string
	Total    int64
}

// CountByArea returns the number of services per area, largest first.
func (repo *offeringRepository) CountByArea(ctx context.Context) ([]repository.AreaServiceCount, error) {
	var rows []areaCountRow
	err := repo.db.WithContext(ctx).
		Raw(`SELECT s.area_id AS area_id, a.name AS area_name, COUNT(*) AS total
FROM services s JOIN areas a ON a.id = s.area_id
GROUP BY s.area_id, a.name
ORDER BY total DESC, a.name`).
		Scan(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to count services by area")
	}

	counts := make([]repository.AreaServiceCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, repository.AreaServiceCount{
			AreaID:   row.AreaID,
			AreaName: row.AreaName,
			Count:    row.Total,
		})
	}

	return counts, nil
}

func mapOfferingWriteError(err error, details string) error {
	if isForeignKeyConstraintViolation(err) {
		return domainerrors.ErrInvalidReference.WithDetails("areaId does not reference an existing area")
	}
	if isNumericOutOfRange(err) {
		return domainerrors.ErrValidationFailed.WithDetails("basePrice or estimatedDuration is out of range")
	}
	if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
		return domainerrors.ErrValidationFailed.WithDetails(details)
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

func skills(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}

func fromOfferingDomain(offering *entity.Offering) *model.OfferingModel {
	return &model.OfferingModel{
		ID:                offering.ID,
		Name:              offering.Name,
		Description:       offering.Description,
		AreaID:            offering.AreaID,
		Category:          string(offering.Category),
		BasePrice:         offering.BasePrice,
		PriceUnit:         string(offering.PriceUnit),
		Active:            offering.Active,
		RequiredSkills:    skills(offering.RequiredSkills),
		EstimatedDuration: offering.EstimatedDuration,
		CreatedAt:         offering.CreatedAt,
		UpdatedAt:         offering.UpdatedAt,
	}
}

func toOfferingDomain(offeringM *model.OfferingModel) *entity.Offering {
	return &entity.Offering{
		ID:                offeringM.ID,
		Name:              offeringM.Name,
		Description:       offeringM.Description,
		AreaID:            offeringM.AreaID,
		Category:          entity.Category(offeringM.Category),
		BasePrice:         offeringM.BasePrice,
		PriceUnit:         entity.PriceUnit(offeringM.PriceUnit),
		Active:            offeringM.Active,
		RequiredSkills:    skills(offeringM.RequiredSkills),
		EstimatedDuration: offeringM.EstimatedDuration,
		CreatedAt:         offeringM.CreatedAt,
		UpdatedAt:         offeringM.UpdatedAt,
	}
}
