package impl

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"strings"

	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/domain/service"
	"backoffice/internal/usecase"
	"backoffice/internal/validation"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Reasons reported when an area deletion is refused.
const (
	blockedByManagers  = "managers"
	blockedByServices  = "services"
	blockedByReference = "foreign_key"
)

// areaService implements the AreaUsecase interface.
type areaService struct {
	txManager repository.TransactionManager
	areaRepo  repository.AreaRepository
	validator *validation.Validator
	events    *eventEmitter
	metrics   service.MetricsRecorder
	logger    *slog.Logger
}

// AreaServiceParams holds dependencies for AreaService, injected by Fx.
type AreaServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	AreaRepo  repository.AreaRepository
	Validator *validation.Validator
	Publisher service.EventPublisher
	Metrics   service.MetricsRecorder
	Logger    *slog.Logger
}

// NewAreaService is the constructor for areaService.
func NewAreaService(params AreaServiceParams) usecase.AreaUsecase {
	return &areaService{
		txManager: params.TxManager,
		areaRepo:  params.AreaRepo,
		validator: params.Validator,
		events:    newEventEmitter(params.Publisher, params.Metrics, params.Logger),
		metrics:   params.Metrics,
		logger:    params.Logger,
	}
}

func (srv *areaService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateArea derives the canonical point from the raw coordinate pair, or from
// the GeoJSON location when no pair is given.
func (srv *areaService) CreateArea(ctx context.Context, input *usecase.CreateAreaInput) (*entity.Area, error) {
	if input == nil {
		return nil, errMissingBody
	}

	draft := *input
	draft.Name = strings.TrimSpace(draft.Name)
	draft.Description = strings.TrimSpace(draft.Description)
	draft.Country = strings.TrimSpace(draft.Country)
	draft.State = strings.TrimSpace(draft.State)
	draft.City = strings.TrimSpace(draft.City)
	draft.ZipCodes = trimAll(draft.ZipCodes)

	if err := srv.validator.Struct(&draft); err != nil {
		return nil, err
	}

	location, err := resolveLocation(draft.Coordinates, draft.Location)
	if err != nil {
		return nil, err
	}

	active := true
	if draft.Active != nil {
		active = *draft.Active
	}

	zipCodes := draft.ZipCodes
	if zipCodes == nil {
		zipCodes = []string{}
	}

	area := &entity.Area{
		ID:          uuid.New(),
		Name:        draft.Name,
		Description: draft.Description,
		Location:    location,
		Country:     draft.Country,
		State:       draft.State,
		City:        draft.City,
		ZipCodes:    zipCodes,
		Active:      active,
	}

	if err := srv.areaRepo.Create(ctx, area); err != nil {
		return nil, errors.Wrap(err, "failed to create area")
	}

	srv.log(ctx).Info("Area created", slog.String("area_id", area.ID.String()), slog.String("name", area.Name))
	srv.events.emit(ctx, service.EventAreaCreated, area.ID)

	return area, nil
}

func resolveLocation(coordinates []float64, location *entity.Location) (entity.Location, error) {
	if coordinates == nil && location != nil {
		coordinates = location.Coordinates()
	}

	resolved, err := entity.NewLocation(coordinates)
	if err != nil {
		return entity.Location{}, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return resolved, nil
}

func (srv *areaService) GetArea(ctx context.Context, id uuid.UUID) (*entity.Area, error) {
	area, err := srv.areaRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrAreaNotFound) {
		return nil, domainerrors.ErrAreaNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get area")
	}

	return area, nil
}

// ListAreas returns one page of areas. A near query keeps only the areas within
// the radius, nearest first.
func (srv *areaService) ListAreas(ctx context.Context, input usecase.AreaListInput) ([]*entity.Area, error) {
	filter := repository.AreaFilter{Active: input.Active}

	radiusKm := input.RadiusKm
	if input.Near != nil {
		if radiusKm <= 0 {
			radiusKm = usecase.DefaultNearRadiusKm
		}
		bound := geo.NewBoundAroundPoint(*input.Near, radiusKm*1000)
		filter.Bound = &bound
	} else {
		filter.Limit = input.Limit
		filter.Offset = input.Offset
	}

	areas, err := srv.areaRepo.Find(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list areas")
	}
	if input.Near == nil {
		return areas, nil
	}

	center := *input.Near
	nearby := make([]*entity.Area, 0, len(areas))
	for _, area := range areas {
		if area.Location.DistanceKm(center) <= radiusKm {
			nearby = append(nearby, area)
		}
	}
	slices.SortStableFunc(nearby, func(a, b *entity.Area) int {
		return cmp.Compare(a.Location.DistanceKm(center), b.Location.DistanceKm(center))
	})

	return pageOf(nearby, input.Limit, input.Offset), nil
}

const (
	defaultNearPageSize = 100
	maxNearPageSize     = 500
)

// pageOf slices one page out of an already ranked result.
func pageOf[T any](items []T, limit, offset int) []T {
	if limit <= 0 {
		limit = defaultNearPageSize
	}
	limit = min(limit, maxNearPageSize)
	offset = max(offset, 0)
	if offset >= len(items) {
		return []T{}
	}

	return items[offset:min(offset+limit, len(items))]
}

func (srv *areaService) UpdateArea(ctx context.Context, id uuid.UUID, input *usecase.UpdateAreaInput) (*entity.Area, error) {
	if input == nil {
		return nil, errMissingBody
	}

	patch := *input
	patch.Name = trimmed(patch.Name)
	patch.Description = trimmed(patch.Description)
	patch.Country = trimmed(patch.Country)
	patch.State = trimmed(patch.State)
	patch.City = trimmed(patch.City)
	patch.ZipCodes = trimAll(patch.ZipCodes)

	if err := srv.validator.Struct(&patch); err != nil {
		return nil, err
	}

	area, err := srv.GetArea(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		area.Name = *patch.Name
	}
	if patch.Description != nil {
		area.Description = *patch.Description
	}
	if patch.Country != nil {
		area.Country = *patch.Country
	}
	if patch.State != nil {
		area.State = *patch.State
	}
	if patch.City != nil {
		area.City = *patch.City
	}
	if patch.ZipCodes != nil {
		area.ZipCodes = patch.ZipCodes
	}
	if patch.Active != nil {
		area.Active = *patch.Active
	}
	if patch.Coordinates != nil || patch.Location != nil {
		location, err := resolveLocation(patch.Coordinates, patch.Location)
		if err != nil {
			return nil, err
		}
		area.Location = location
	}

	if err := srv.areaRepo.Update(ctx, area); err != nil {
		if errors.Is(err, repository.ErrAreaNotFound) {
			return nil, domainerrors.ErrAreaNotFound
		}

		return nil, errors.Wrap(err, "failed to update area")
	}

	srv.events.emit(ctx, service.EventAreaUpdated, area.ID)

	return area, nil
}

// DeleteArea locks the area row, runs the integrity guard against the same
// transaction and only then deletes. A manager or service inserted concurrently
// waits on the row lock, and the foreign keys reject anything that slips past.
func (srv *areaService) DeleteArea(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		areaRepo := txRepoFactory.NewAreaRepository()
		if _, err := areaRepo.LockByID(ctx, id); err != nil {
			return err
		}

		guard := NewIntegrityGuard(txRepoFactory.NewManagerRepository(), txRepoFactory.NewOfferingRepository())
		if err := guard.CanDeleteArea(ctx, id); err != nil {
			return err
		}

		return areaRepo.Delete(ctx, id)
	})
	if err != nil {
		return srv.deleteAreaError(ctx, id, err)
	}

	srv.log(ctx).Info("Area deleted", slog.String("area_id", id.String()))
	srv.events.emit(ctx, service.EventAreaDeleted, id)

	return nil
}

func (srv *areaService) deleteAreaError(ctx context.Context, id uuid.UUID, err error) error {
	var reason string
	switch {
	case errors.Is(err, repository.ErrAreaNotFound):
		return domainerrors.ErrAreaNotFound
	case errors.Is(err, domainerrors.ErrAreaHasManagers):
		reason = blockedByManagers
	case errors.Is(err, domainerrors.ErrAreaHasServices):
		reason = blockedByServices
	case errors.Is(err, domainerrors.ErrAreaInUse):
		reason = blockedByReference
	default:
		return errors.Wrap(err, "failed to delete area")
	}

	srv.metrics.AreaDeleteBlocked(reason)
	srv.log(ctx).Info("Area deletion blocked", slog.String("area_id", id.String()), slog.String("reason", reason))

	return err
}
