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

// authService implements the AuthUsecase interface.
type authService struct {
	adminRepo         repository.AdminRepository
	managerRepo       repository.ManagerRepository
	credentials       usecase.CredentialUsecase
	tokenService      service.TokenService
	validator         *validation.Validator
	events            *eventEmitter
	minPasswordLength int
	logger            *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	AdminRepo    repository.AdminRepository
	ManagerRepo  repository.ManagerRepository
	Credentials  usecase.CredentialUsecase
	TokenService service.TokenService
	Validator    *validation.Validator
	Publisher    service.EventPublisher
	Metrics      service.MetricsRecorder
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		adminRepo:         params.AdminRepo,
		managerRepo:       params.ManagerRepo,
		credentials:       params.Credentials,
		tokenService:      params.TokenService,
		validator:         params.Validator,
		events:            newEventEmitter(params.Publisher, params.Metrics, params.Logger),
		minPasswordLength: params.Config.MinPasswordLength(),
		logger:            params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an admin account and signs it in.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterAdminInput) (*usecase.SessionOutput, error) {
	if input == nil {
		return nil, errMissingBody
	}

	draft := *input
	draft.Name = strings.TrimSpace(draft.Name)
	draft.Email = entity.NormalizeEmail(draft.Email)

	if err := srv.validator.Struct(&draft); err != nil {
		return nil, err
	}
	if err := checkPasswordLength(draft.Password, srv.minPasswordLength); err != nil {
		return nil, err
	}
	if err := srv.credentials.AssertUniqueEmail(ctx, entity.AccountKindAdmin, draft.Email, nil); err != nil {
		return nil, err
	}

	passwordHash, err := srv.credentials.Hash(draft.Password)
	if err != nil {
		return nil, err
	}

	admin := &entity.Admin{
		ID:           uuid.New(),
		Name:         draft.Name,
		Email:        draft.Email,
		PasswordHash: passwordHash,
		Role:         entity.RoleAdmin,
	}
	if err := srv.adminRepo.Create(ctx, admin); err != nil {
		return nil, errors.Wrap(err, "failed to create admin")
	}

	srv.log(ctx).Info("Admin registered", slog.String("admin_id", admin.ID.String()))
	srv.events.emit(ctx, service.EventAdminRegistered, admin.ID)

	return srv.session(admin.ID, admin.Role, admin, nil)
}

// Login authenticates an admin. Unknown emails and wrong passwords are
// indistinguishable to the caller.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.SessionOutput, error) {
	email, err := srv.loginEmail(input)
	if err != nil {
		return nil, err
	}

	admin, err := srv.adminRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrAdminNotFound) {
		srv.credentials.Verify(input.Password, "")

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find admin")
	}

	if !srv.credentials.Verify(input.Password, admin.PasswordHash) {
		srv.log(ctx).Info("Admin login rejected", slog.String("admin_id", admin.ID.String()))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.session(admin.ID, admin.Role, admin, nil)
}

// LoginManager authenticates a manager. Only active managers receive a token.
func (srv *authService) LoginManager(ctx context.Context, input *usecase.LoginInput) (*usecase.SessionOutput, error) {
	email, err := srv.loginEmail(input)
	if err != nil {
		return nil, err
	}

	manager, err := srv.managerRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrManagerNotFound) {
		srv.credentials.Verify(input.Password, "")

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find manager")
	}

	if !srv.credentials.Verify(input.Password, manager.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if manager.Status != entity.ManagerStatusActive {
		return nil, domainerrors.ErrAccountDisabled
	}

	return srv.session(manager.ID, entity.RoleManager, nil, manager)
}

func (srv *authService) loginEmail(input *usecase.LoginInput) (string, error) {
	if input == nil {
		return "", errMissingBody
	}

	draft := *input
	draft.Email = entity.NormalizeEmail(draft.Email)
	if err := srv.validator.Struct(&draft); err != nil {
		return "", err
	}

	return draft.Email, nil
}

func (srv *authService) session(subjectID uuid.UUID, role entity.Role, admin *entity.Admin, manager *entity.Manager) (*usecase.SessionOutput, error) {
	issued, err := srv.tokenService.Issue(subjectID, role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	return &usecase.SessionOutput{
		Token:     issued.Token,
		ExpiresAt: issued.ExpiresAt,
		Admin:     admin,
		Manager:   manager,
	}, nil
}

// Me returns the admin the session belongs to.
func (srv *authService) Me(ctx context.Context, adminID uuid.UUID) (*entity.Admin, error) {
	admin, err := srv.adminRepo.FindByID(ctx, adminID)
	if errors.Is(err, repository.ErrAdminNotFound) {
		return nil, domainerrors.ErrAdminNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find admin")
	}

	return admin, nil
}
