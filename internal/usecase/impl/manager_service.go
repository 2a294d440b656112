package impl

import (
	"context"
	"log/slog"
	"strings"

	"backoffice/config"
	deliverycontext "backoffice/internal/delivery/context"
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

// managerService implements the ManagerUsecase interface.
type managerService struct {
	managerRepo       repository.ManagerRepository
	areaRepo          repository.AreaRepository
	credentials       usecase.CredentialUsecase
	allocator         usecase.SequenceAllocator
	qrCodes           service.QRCodeService
	validator         *validation.Validator
	events            *eventEmitter
	metrics           service.MetricsRecorder
	minPasswordLength int
	codeAttempts      int
	logger            *slog.Logger
}

// ManagerServiceParams holds dependencies for ManagerService, injected by Fx.
type ManagerServiceParams struct {
	fx.In

	ManagerRepo repository.ManagerRepository
	AreaRepo    repository.AreaRepository
	Credentials usecase.CredentialUsecase
	Allocator   usecase.SequenceAllocator
	QRCodes     service.QRCodeService
	Validator   *validation.Validator
	Publisher   service.EventPublisher
	Metrics     service.MetricsRecorder
	Config      *config.Config
	Logger      *slog.Logger
}

// NewManagerService is the constructor for managerService.
func NewManagerService(params ManagerServiceParams) usecase.ManagerUsecase {
	return &managerService{
		managerRepo:       params.ManagerRepo,
		areaRepo:          params.AreaRepo,
		credentials:       params.Credentials,
		allocator:         params.Allocator,
		qrCodes:           params.QRCodes,
		validator:         params.Validator,
		events:            newEventEmitter(params.Publisher, params.Metrics, params.Logger),
		metrics:           params.Metrics,
		minPasswordLength: params.Config.MinPasswordLength(),
		codeAttempts:      params.Config.CodeAllocationAttempts(),
		logger:            params.Logger,
	}
}

func (srv *managerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateManager validates and hashes before allocating a code, so a failure
// never leaves a partially created manager behind.
func (srv *managerService) CreateManager(ctx context.Context, input *usecase.CreateManagerInput) (*entity.Manager, error) {
	if input == nil {
		return nil, errMissingBody
	}

	draft := *input
	draft.FirstName = strings.TrimSpace(draft.FirstName)
	draft.LastName = strings.TrimSpace(draft.LastName)
	draft.Email = entity.NormalizeEmail(draft.Email)
	draft.Phone = strings.TrimSpace(draft.Phone)
	if draft.Status == "" {
		draft.Status = entity.ManagerStatusActive
	}

	if err := srv.validator.Struct(&draft); err != nil {
		return nil, err
	}
	if err := checkPasswordLength(draft.Password, srv.minPasswordLength); err != nil {
		return nil, err
	}
	if err := srv.ensureAreaExists(ctx, draft.AssignedArea); err != nil {
		return nil, err
	}
	if err := srv.credentials.AssertUniqueEmail(ctx, entity.AccountKindManager, draft.Email, nil); err != nil {
		return nil, err
	}

	passwordHash, err := srv.credentials.Hash(draft.Password)
	if err != nil {
		return nil, err
	}

	manager := &entity.Manager{
		ID:             uuid.New(),
		FirstName:      draft.FirstName,
		LastName:       draft.LastName,
		Email:          draft.Email,
		PasswordHash:   passwordHash,
		Phone:          draft.Phone,
		AssignedAreaID: draft.AssignedArea,
		Status:         draft.Status,
	}

	if err := srv.insertWithCode(ctx, manager); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Manager created",
		slog.String("manager_id", manager.ID.String()),
		slog.String("manager_code", manager.ManagerCode),
	)
	srv.events.emit(ctx, service.EventManagerCreated, manager.ID)

	return manager, nil
}

// insertWithCode allocates a code and inserts the manager. When the insert loses
// a race on manager_code it allocates again, up to the configured attempts.
func (srv *managerService) insertWithCode(ctx context.Context, manager *entity.Manager) error {
	for attempt := 1; ; attempt++ {
		code, err := srv.allocator.NextManagerCode(ctx)
		if err != nil {
			return err
		}
		manager.ManagerCode = code

		err = srv.managerRepo.Create(ctx, manager)
		if err == nil {
			return nil
		}
		if !errors.Is(err, domainerrors.ErrManagerCodeTaken) {
			return err
		}

		srv.metrics.ManagerCodeCollision()
		srv.log(ctx).Warn("Manager code already taken",
			slog.String("manager_code", code),
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", srv.codeAttempts),
		)
		if attempt >= srv.codeAttempts {
			return err
		}
	}
}

func (srv *managerService) ensureAreaExists(ctx context.Context, areaID uuid.UUID) error {
	exists, err := srv.areaRepo.Exists(ctx, areaID)
	if err != nil {
		return errors.Wrap(err, "failed to check assigned area")
	}
	if !exists {
		return domainerrors.ErrInvalidReference.WithDetails("assignedArea does not reference an existing area")
	}

	return nil
}

func (srv *managerService) GetManager(ctx context.Context, id uuid.UUID) (*entity.Manager, error) {
	manager, err := srv.managerRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrManagerNotFound) {
		return nil, domainerrors.ErrManagerNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get manager")
	}

	return manager, nil
}

func (srv *managerService) ListManagers(ctx context.Context, input usecase.ManagerListInput) ([]*entity.Manager, error) {
	managers, err := srv.managerRepo.Find(ctx, repository.ManagerFilter{
		AreaID: input.AreaID,
		Status: input.Status,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list managers")
	}

	return managers, nil
}

// UpdateManager merges the non-nil fields of the patch into the stored manager.
func (srv *managerService) UpdateManager(ctx context.Context, id uuid.UUID, input *usecase.UpdateManagerInput) (*entity.Manager, error) {
	if input == nil {
		return nil, errMissingBody
	}

	patch := *input
	patch.FirstName = trimmed(patch.FirstName)
	patch.LastName = trimmed(patch.LastName)
	patch.Phone = trimmed(patch.Phone)
	if patch.Email != nil {
		email := entity.NormalizeEmail(*patch.Email)
		patch.Email = &email
	}

	if err := srv.validator.Struct(&patch); err != nil {
		return nil, err
	}

	manager, err := srv.GetManager(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.FirstName != nil {
		manager.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		manager.LastName = *patch.LastName
	}
	if patch.Phone != nil {
		manager.Phone = *patch.Phone
	}
	if patch.Status != nil {
		manager.Status = *patch.Status
	}
	if patch.Email != nil && *patch.Email != manager.Email {
		if err := srv.credentials.AssertUniqueEmail(ctx, entity.AccountKindManager, *patch.Email, &manager.ID); err != nil {
			return nil, err
		}
		manager.Email = *patch.Email
	}
	if patch.AssignedArea != nil && *patch.AssignedArea != manager.AssignedAreaID {
		if err := srv.ensureAreaExists(ctx, *patch.AssignedArea); err != nil {
			return nil, err
		}
		manager.AssignedAreaID = *patch.AssignedArea
	}
	if patch.Password != nil {
		if err := checkPasswordLength(*patch.Password, srv.minPasswordLength); err != nil {
			return nil, err
		}
		passwordHash, err := srv.credentials.Hash(*patch.Password)
		if err != nil {
			return nil, err
		}
		manager.PasswordHash = passwordHash
	}

	if err := srv.managerRepo.Update(ctx, manager); err != nil {
		if errors.Is(err, repository.ErrManagerNotFound) {
			return nil, domainerrors.ErrManagerNotFound
		}

		return nil, errors.Wrap(err, "failed to update manager")
	}

	srv.events.emit(ctx, service.EventManagerUpdated, manager.ID)

	return manager, nil
}

// DeleteManager removes the manager. Its code is never handed out again.
func (srv *managerService) DeleteManager(ctx context.Context, id uuid.UUID) error {
	if err := srv.managerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrManagerNotFound) {
			return domainerrors.ErrManagerNotFound
		}

		return errors.Wrap(err, "failed to delete manager")
	}

	srv.log(ctx).Info("Manager deleted", slog.String("manager_id", id.String()))
	srv.events.emit(ctx, service.EventManagerDeleted, id)

	return nil
}

func (srv *managerService) ManagerBadge(ctx context.Context, id uuid.UUID) ([]byte, error) {
	manager, err := srv.GetManager(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCodes.GenerateManagerBadge(manager)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render manager badge")
	}

	return png, nil
}

// VerifyBadge rejects badges whose code no longer matches the stored manager.
func (srv *managerService) VerifyBadge(ctx context.Context, input *usecase.VerifyBadgeInput) (*entity.Manager, error) {
	if input == nil {
		return nil, errMissingBody
	}
	if err := srv.validator.Struct(input); err != nil {
		return nil, err
	}

	badge, err := srv.qrCodes.ParseManagerBadge(input.Data)
	if err != nil {
		srv.log(ctx).Debug("Unreadable manager badge", slog.Any("error", err))

		return nil, domainerrors.ErrValidationFailed.WithDetails("data is not a valid manager badge")
	}

	manager, err := srv.GetManager(ctx, badge.ManagerID)
	if err != nil {
		return nil, err
	}
	if manager.ManagerCode != badge.ManagerCode {
		return nil, domainerrors.ErrValidationFailed.WithDetails("badge does not match the manager record")
	}

	return manager, nil
}
