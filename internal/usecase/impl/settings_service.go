package impl

import (
	"context"
	"log/slog"

	"backoffice/config"
	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/usecase"
	"backoffice/internal/validation"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// settingsService implements the SettingsUsecase interface.
type settingsService struct {
	adminRepo         repository.AdminRepository
	credentials       usecase.CredentialUsecase
	validator         *validation.Validator
	minPasswordLength int
	logger            *slog.Logger
}

// NewSettingsService is the constructor for settingsService.
func NewSettingsService(
	adminRepo repository.AdminRepository,
	credentials usecase.CredentialUsecase,
	validator *validation.Validator,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.SettingsUsecase {
	return &settingsService{
		adminRepo:         adminRepo,
		credentials:       credentials,
		validator:         validator,
		minPasswordLength: cfg.MinPasswordLength(),
		logger:            logger,
	}
}

func (srv *settingsService) GetSettings(ctx context.Context, adminID uuid.UUID) (*entity.Admin, error) {
	admin, err := srv.adminRepo.FindByID(ctx, adminID)
	if errors.Is(err, repository.ErrAdminNotFound) {
		return nil, domainerrors.ErrAdminNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load settings")
	}

	return admin, nil
}

// UpdateSettings changes name and email. The admin's own record does not count
// as a duplicate of its email.
func (srv *settingsService) UpdateSettings(ctx context.Context, adminID uuid.UUID, input *usecase.UpdateSettingsInput) (*entity.Admin, error) {
	if input == nil {
		return nil, errMissingBody
	}

	patch := *input
	patch.Name = trimmed(patch.Name)
	if patch.Email != nil {
		email := entity.NormalizeEmail(*patch.Email)
		patch.Email = &email
	}
	if err := srv.validator.Struct(&patch); err != nil {
		return nil, err
	}

	admin, err := srv.GetSettings(ctx, adminID)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		admin.Name = *patch.Name
	}
	if patch.Email != nil && *patch.Email != admin.Email {
		if err := srv.credentials.AssertUniqueEmail(ctx, entity.AccountKindAdmin, *patch.Email, &admin.ID); err != nil {
			return nil, err
		}
		admin.Email = *patch.Email
	}

	if err := srv.save(ctx, admin); err != nil {
		return nil, err
	}

	return admin, nil
}

// ChangePassword requires the current password before storing a new one.
func (srv *settingsService) ChangePassword(ctx context.Context, adminID uuid.UUID, input *usecase.ChangePasswordInput) error {
	if input == nil {
		return errMissingBody
	}
	if err := srv.validator.Struct(input); err != nil {
		return err
	}

	admin, err := srv.GetSettings(ctx, adminID)
	if err != nil {
		return err
	}

	if !srv.credentials.Verify(input.CurrentPassword, admin.PasswordHash) {
		return domainerrors.ErrValidationFailed.WithDetails("currentPassword is incorrect")
	}
	if err := checkPasswordLength(input.NewPassword, srv.minPasswordLength); err != nil {
		return err
	}

	passwordHash, err := srv.credentials.Hash(input.NewPassword)
	if err != nil {
		return err
	}
	admin.PasswordHash = passwordHash

	if err := srv.save(ctx, admin); err != nil {
		return err
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Admin password changed", slog.String("admin_id", admin.ID.String()))

	return nil
}

func (srv *settingsService) save(ctx context.Context, admin *entity.Admin) error {
	if err := srv.adminRepo.Update(ctx, admin); err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return domainerrors.ErrAdminNotFound
		}

		return errors.Wrap(err, "failed to save settings")
	}

	return nil
}
