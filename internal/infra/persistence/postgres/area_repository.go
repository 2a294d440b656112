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
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// areaRepository implements the domain.AreaRepository interface.
type areaRepository struct {
	db *gorm.DB
}

// NewAreaRepository is the constructor for areaRepository.
func NewAreaRepository(db *gorm.DB) repository.AreaRepository {
	return &areaRepository{db: db}
}

// Create persists a new area.
func (repo *areaRepository) Create(ctx context.Context, area *entity.Area) error {
	areaM := fromAreaDomain(area)

	if err := repo.db.WithContext(ctx).Create(areaM).Error; err != nil {
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("missing or invalid area information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create area")
	}

	area.CreatedAt = areaM.CreatedAt
	area.UpdatedAt = areaM.UpdatedAt

	return nil
}

// FindByID retrieves an area by id.
func (repo *areaRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Area, error) {
	return repo.findByID(repo.db.WithContext(ctx), id)
}

// LockByID loads the area with FOR UPDATE. Only meaningful inside a transaction.
func (repo *areaRepository) LockByID(ctx context.Context, id uuid.UUID) (*entity.Area, error) {
	return repo.findByID(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), id)
}

func (repo *areaRepository) findByID(query *gorm.DB, id uuid.UUID) (*entity.Area, error) {
	var areaM model.AreaModel
	if err := query.Where("id = ?", id).First(&areaM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAreaNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find area")
	}

	return toAreaDomain(&areaM), nil
}

// Find returns areas ordered by name. A bounded query returns every area in
// the box so the caller can rank by distance before paging.
func (repo *areaRepository) Find(ctx context.Context, filter repository.AreaFilter) ([]*entity.Area, error) {
	query := repo.db.WithContext(ctx).Model(&model.AreaModel{})
	if filter.Active != nil {
		query = query.Where("active = ?", *filter.Active)
	}
	if filter.Bound != nil {
		query = whereInBound(query, *filter.Bound)
	} else {
		query = paginate(query, filter.Limit, filter.Offset)
	}

	var areaModels []*model.AreaModel
	if err := query.Order("name, id").Find(&areaModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list areas")
	}

	areas := make([]*entity.Area, 0, len(areaModels))
	for _, areaM := range areaModels {
		areas = append(areas, toAreaDomain(areaM))
	}

	return areas, nil
}

// Update writes every mutable column of an existing area.
func (repo *areaRepository) Update(ctx context.Context, area *entity.Area) error {
	area.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.AreaModel{}).
		Where("id = ?", area.ID).
		Updates(map[string]any{
			"name":        area.Name,
			"description": area.Description,
			"longitude":   area.Location.Longitude(),
			"latitude":    area.Location.Latitude(),
			"country":     area.Country,
			"state":       area.State,
			"city":        area.City,
			"zip_codes":   pq.StringArray(zipCodes(area.ZipCodes)),
			"active":      area.Active,
			"updated_at":  area.UpdatedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update area")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAreaNotFound
	}

	return nil
}

// Delete removes an area. A remaining reference trips the foreign key and returns ErrAreaInUse.
func (repo *areaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.AreaModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			switch violatedConstraint(result.Error) {
			case constraintManagersArea:
				return domainerrors.ErrAreaInUse.WithDetails("managers are still assigned to this area")
			case constraintServicesArea:
				return domainerrors.ErrAreaInUse.WithDetails("services are still offered in this area")
			}

			return domainerrors.ErrAreaInUse
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete area")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAreaNotFound
	}

	return nil
}

// Exists reports whether an area with the id exists.
func (repo *areaRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := repo.db.WithContext(ctx).
		Raw("SELECT EXISTS(SELECT 1 FROM areas WHERE id = ?)", id).
		Scan(&exists).Error
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check area existence")
	}

	return exists, nil
}

// Count returns the number of areas.
func (repo *areaRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.AreaModel{}).Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count areas")
	}

	return count, nil
}

func zipCodes(codes []string) []string {
	if codes == nil {
		return []string{}
	}

	return codes
}

func fromAreaDomain(area *entity.Area) *model.AreaModel {
	return &model.AreaModel{
		ID:          area.ID,
		Name:        area.Name,
		Description: area.Description,
		Longitude:   area.Location.Longitude(),
		Latitude:    area.Location.Latitude(),
		Country:     area.Country,
		State:       area.State,
		City:        area.City,
		ZipCodes:    zipCodes(area.ZipCodes),
		Active:      area.Active,
		CreatedAt:   area.CreatedAt,
		UpdatedAt:   area.UpdatedAt,
	}
}

func toAreaDomain(areaM *model.AreaModel) *entity.Area {
	return &entity.Area{
		ID:          areaM.ID,
		Name:        areaM.Name,
		Description: areaM.Description,
		Location:    entity.Location{Point: orb.Point{areaM.Longitude, areaM.Latitude}},
		Country:     areaM.Country,
		State:       areaM.State,
		City:        areaM.City,
		ZipCodes:    zipCodes(areaM.ZipCodes),
		Active:      areaM.Active,
		CreatedAt:   areaM.CreatedAt,
		UpdatedAt:   areaM.UpdatedAt,
	}
}

// whereInBound matches points inside the box. A box crossing the antimeridian
// has Min.Lon > Max.Lon and is split into two longitude ranges.
func whereInBound(query *gorm.DB, bound orb.Bound) *gorm.DB {
	query = query.Where("latitude BETWEEN ? AND ?", bound.Min.Lat(), bound.Max.Lat())
	if bound.Min.Lon() > bound.Max.Lon() {
		return query.Where("longitude >= ? OR longitude <= ?", bound.Min.Lon(), bound.Max.Lon())
	}

	return query.Where("longitude BETWEEN ? AND ?", bound.Min.Lon(), bound.Max.Lon())
}
