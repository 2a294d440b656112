package impl

import (
	"context"
	"log/slog"
	"strings"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/domain/service"
	"backoffice/internal/usecase"
	"backoffice/internal/validation"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// offeringService implements the OfferingUsecase interface.
type offeringService struct {
	offeringRepo repository.OfferingRepository
	areaRepo     repository.AreaRepository
	validator    *validation.Validator
	events       *eventEmitter
}

// OfferingServiceParams holds dependencies for OfferingService, injected by Fx.
type OfferingServiceParams struct {
	fx.In

	OfferingRepo repository.OfferingRepository
	AreaRepo     repository.AreaRepository
	Validator    *validation.Validator
	Publisher    service.EventPublisher
	Metrics      service.MetricsRecorder
	Logger       *slog.Logger
}

// NewOfferingService is the constructor for offeringService.
func NewOfferingService(params OfferingServiceParams) usecase.OfferingUsecase {
	return &offeringService{
		offeringRepo: params.OfferingRepo,
		areaRepo:     params.AreaRepo,
		validator:    params.Validator,
		events:       newEventEmitter(params.Publisher, params.Metrics, params.Logger),
	}
}

// CreateOffering requires areaId to reference an existing area.
func (srv *offeringService) CreateOffering(ctx context.Context, input *usecase.CreateOfferingInput) (*entity.Offering, error) {
	if input == nil {
		return nil, errMissingBody
	}

	draft := *input
	draft.Name = strings.TrimSpace(draft.Name)
	draft.Description = strings.TrimSpace(draft.Description)
	draft.RequiredSkills = trimAll(draft.RequiredSkills)

	if err := srv.validator.Struct(&draft); err != nil {
		return nil, err
	}
	if err := srv.ensureAreaExists(ctx, draft.AreaID); err != nil {
		return nil, err
	}

	active := true
	if draft.Active != nil {
		active = *draft.Active
	}

	skills := draft.RequiredSkills
	if skills == nil {
		skills = []string{}
	}

	offering := &entity.Offering{
		ID:                uuid.New(),
		Name:              draft.Name,
		Description:       draft.Description,
		AreaID:            draft.AreaID,
		Category:          draft.Category,
		BasePrice:         *draft.BasePrice,
		PriceUnit:         draft.PriceUnit,
		Active:            active,
		RequiredSkills:    skills,
		EstimatedDuration: *draft.EstimatedDuration,
	}

	if err := srv.offeringRepo.Create(ctx, offering); err != nil {
		return nil, errors.Wrap(err, "failed to create service")
	}

	srv.events.emit(ctx, service.EventServiceCreated, offering.ID)

	return offering, nil
}

func (srv *offeringService) ensureAreaExists(ctx context.Context, areaID uuid.UUID) error {
	exists, err := srv.areaRepo.Exists(ctx, areaID)
	if err != nil {
		return errors.Wrap(err, "failed to check service area")
	}
	if !exists {
		return domainerrors.ErrInvalidReference.WithDetails("areaId does not reference an existing area")
	}

	return nil
}

func (srv *offeringService) GetOffering(ctx context.Context, id uuid.UUID) (*entity.Offering, error) {
	offering, err := srv.offeringRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrOfferingNotFound) {
		return nil, domainerrors.ErrServiceNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get service")
	}

	return offering, nil
}

func (srv *offeringService) ListOfferings(ctx context.Context, input usecase.OfferingListInput) ([]*entity.Offering, error) {
	offerings, err := srv.offeringRepo.Find(ctx, repository.OfferingFilter{
		AreaID:   input.AreaID,
		Category: input.Category,
		Active:   input.Active,
		Limit:    input.Limit,
		Offset:   input.Offset,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list services")
	}

	return offerings, nil
}

// UpdateOffering re-checks the area only when areaId changes.
func (srv *offeringService) UpdateOffering(ctx context.Context, id uuid.UUID, input *usecase.UpdateOfferingInput) (*entity.Offering, error) {
	if input == nil {
		return nil, errMissingBody
	}

	patch := *input
	patch.Name = trimmed(patch.Name)
	patch.Description = trimmed(patch.Description)
	patch.RequiredSkills = trimAll(patch.RequiredSkills)

	if err := srv.validator.Struct(&patch); err != nil {
		return nil, err
	}

	offering, err := srv.GetOffering(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		offering.Name = *patch.Name
	}
	if patch.Description != nil {
		offering.Description = *patch.Description
	}
	if patch.Category != nil {
		offering.Category = *patch.Category
	}
	if patch.BasePrice != nil {
		offering.BasePrice = *patch.BasePrice
	}
	if patch.PriceUnit != nil {
		offering.PriceUnit = *patch.PriceUnit
	}
	if patch.Active != nil {
		offering.Active = *patch.Active
	}
	if patch.RequiredSkills != nil {
		offering.RequiredSkills = patch.RequiredSkills
	}
	if patch.EstimatedDuration != nil {
		offering.EstimatedDuration = *patch.EstimatedDuration
	}
	if patch.AreaID != nil && *patch.AreaID != offering.AreaID {
		if err := srv.ensureAreaExists(ctx, *patch.AreaID); err != nil {
			return nil, err
		}
		offering.AreaID = *patch.AreaID
	}

	if err := srv.offeringRepo.Update(ctx, offering); err != nil {
		if errors.Is(err, repository.ErrOfferingNotFound) {
			return nil, domainerrors.ErrServiceNotFound
		}

		return nil, errors.Wrap(err, "failed to update service")
	}

	srv.events.emit(ctx, service.EventServiceUpdated, offering.ID)

	return offering, nil
}

func (srv *offeringService) DeleteOffering(ctx context.Context, id uuid.UUID) error {
	if err := srv.offeringRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrOfferingNotFound) {
			return domainerrors.ErrServiceNotFound
		}

		return errors.Wrap(err, "failed to delete service")
	}

	srv.events.emit(ctx, service.EventServiceDeleted, id)

	return nil
}
