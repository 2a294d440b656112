package impl

import (
	"context"
	"testing"
	"time"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/domain/service"
	mockRepo "backoffice/internal/mocks/repository"
	mockSvc "backoffice/internal/mocks/service"
	mockUC "backoffice/internal/mocks/usecase"
	"backoffice/internal/usecase"
	"backoffice/internal/validation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authFixtures struct {
	adminRepo    *mockRepo.MockAdminRepository
	managerRepo  *mockRepo.MockManagerRepository
	credentials  *mockUC.MockCredentialUsecase
	tokenService *mockSvc.MockTokenService
	publisher    *mockSvc.MockEventPublisher
	metrics      *mockSvc.MockMetricsRecorder
}

func createTestAuthService(t *testing.T) (usecase.AuthUsecase, authFixtures) {
	fx := authFixtures{
		adminRepo:    mockRepo.NewMockAdminRepository(t),
		managerRepo:  mockRepo.NewMockManagerRepository(t),
		credentials:  mockUC.NewMockCredentialUsecase(t),
		tokenService: mockSvc.NewMockTokenService(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
		metrics:      mockSvc.NewMockMetricsRecorder(t),
	}

	srv := NewAuthService(AuthServiceParams{
		AdminRepo:    fx.adminRepo,
		ManagerRepo:  fx.managerRepo,
		Credentials:  fx.credentials,
		TokenService: fx.tokenService,
		Validator:    validation.New(),
		Publisher:    fx.publisher,
		Metrics:      fx.metrics,
		Config:       newTestConfig(3),
		Logger:       newDiscardLogger(),
	})

	return srv, fx
}

func TestAuthService_Register(t *testing.T) {
	srv, fx := createTestAuthService(t)
	expiresAt := time.Now().Add(6 * time.Hour)

	fx.credentials.EXPECT().AssertUniqueEmail(mock.Anything, entity.AccountKindAdmin, "root@example.com", (*uuid.UUID)(nil)).Return(nil).Once()
	fx.credentials.EXPECT().Hash("Password123!").Return("$2a$04$digest", nil).Once()
	fx.adminRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(a *entity.Admin) bool {
		return a.Email == "root@example.com" && a.Role == entity.RoleAdmin && a.PasswordHash == "$2a$04$digest"
	})).Return(nil).Once()
	fx.tokenService.EXPECT().Issue(mock.Anything, entity.RoleAdmin).Return(&service.IssuedToken{Token: "signed", ExpiresAt: expiresAt}, nil).Once()
	expectEvent(fx.publisher, service.EventAdminRegistered)

	session, err := srv.Register(context.Background(), &usecase.RegisterAdminInput{
		Name:     " Root ",
		Email:    "Root@Example.com",
		Password: "Password123!",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed", session.Token)
	assert.Equal(t, expiresAt, session.ExpiresAt)
	require.NotNil(t, session.Admin)
	assert.Equal(t, "Root", session.Admin.Name)
	assert.Nil(t, session.Manager)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	srv, fx := createTestAuthService(t)

	fx.credentials.EXPECT().AssertUniqueEmail(mock.Anything, entity.AccountKindAdmin, "root@example.com", (*uuid.UUID)(nil)).
		Return(domainerrors.ErrDuplicateEmail).
		Once()

	_, err := srv.Register(context.Background(), &usecase.RegisterAdminInput{
		Name:     "Root",
		Email:    "root@example.com",
		Password: "Password123!",
	})
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateEmail)
}

func TestAuthService_Register_ShortPassword(t *testing.T) {
	srv, _ := createTestAuthService(t)

	_, err := srv.Register(context.Background(), &usecase.RegisterAdminInput{
		Name:     "Root",
		Email:    "root@example.com",
		Password: "short",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAuthService_Login(t *testing.T) {
	admin := &entity.Admin{ID: uuid.New(), Email: "root@example.com", PasswordHash: "$2a$04$digest", Role: entity.RoleAdmin}

	tests := []struct {
		name    string
		setup   func(fx authFixtures)
		wantErr error
	}{
		{
			name: "valid credentials",
			setup: func(fx authFixtures) {
				fx.adminRepo.EXPECT().FindByEmail(mock.Anything, "root@example.com").Return(admin, nil).Once()
				fx.credentials.EXPECT().Verify("Password123!", "$2a$04$digest").Return(true).Once()
				fx.tokenService.EXPECT().Issue(admin.ID, entity.RoleAdmin).Return(&service.IssuedToken{Token: "signed"}, nil).Once()
			},
		},
		{
			name: "wrong password",
			setup: func(fx authFixtures) {
				fx.adminRepo.EXPECT().FindByEmail(mock.Anything, "root@example.com").Return(admin, nil).Once()
				fx.credentials.EXPECT().Verify("Password123!", "$2a$04$digest").Return(false).Once()
			},
			wantErr: domainerrors.ErrInvalidCredentials,
		},
		{
			name: "unknown email",
			setup: func(fx authFixtures) {
				fx.adminRepo.EXPECT().FindByEmail(mock.Anything, "root@example.com").Return(nil, repository.ErrAdminNotFound).Once()
				fx.credentials.EXPECT().Verify("Password123!", "").Return(false).Once()
			},
			wantErr: domainerrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, fx := createTestAuthService(t)
			tt.setup(fx)

			session, err := srv.Login(context.Background(), &usecase.LoginInput{Email: " ROOT@example.com", Password: "Password123!"})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, session)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, "signed", session.Token)
		})
	}
}

func TestAuthService_LoginManager(t *testing.T) {
	tests := []struct {
		name    string
		status  entity.ManagerStatus
		valid   bool
		wantErr error
	}{
		{name: "active manager", status: entity.ManagerStatusActive, valid: true},
		{name: "suspended manager", status: entity.ManagerStatusSuspended, valid: true, wantErr: domainerrors.ErrAccountDisabled},
		{name: "inactive manager with wrong password", status: entity.ManagerStatusInactive, valid: false, wantErr: domainerrors.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, fx := createTestAuthService(t)
			manager := &entity.Manager{ID: uuid.New(), Email: "ada@example.com", PasswordHash: "$2a$04$digest", Status: tt.status}

			fx.managerRepo.EXPECT().FindByEmail(mock.Anything, "ada@example.com").Return(manager, nil).Once()
			fx.credentials.EXPECT().Verify("Password123!", "$2a$04$digest").Return(tt.valid).Once()
			if tt.wantErr == nil {
				fx.tokenService.EXPECT().Issue(manager.ID, entity.RoleManager).Return(&service.IssuedToken{Token: "signed"}, nil).Once()
			}

			session, err := srv.LoginManager(context.Background(), &usecase.LoginInput{Email: "ada@example.com", Password: "Password123!"})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, manager, session.Manager)
			assert.Nil(t, session.Admin)
		})
	}
}

func TestAuthService_LoginManager_UnknownEmailStillVerifies(t *testing.T) {
	srv, fx := createTestAuthService(t)

	fx.managerRepo.EXPECT().FindByEmail(mock.Anything, "ghost@example.com").Return(nil, repository.ErrManagerNotFound).Once()
	fx.credentials.EXPECT().Verify("Password123!", "").Return(false).Once()

	_, err := srv.LoginManager(context.Background(), &usecase.LoginInput{Email: "ghost@example.com", Password: "Password123!"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_InvalidInput(t *testing.T) {
	srv, _ := createTestAuthService(t)

	_, err := srv.Login(context.Background(), &usecase.LoginInput{Email: "not-an-email", Password: "x"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = srv.LoginManager(context.Background(), nil)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAuthService_Me(t *testing.T) {
	srv, fx := createTestAuthService(t)
	admin := &entity.Admin{ID: uuid.New(), Name: "Root"}
	missing := uuid.New()

	fx.adminRepo.EXPECT().FindByID(mock.Anything, admin.ID).Return(admin, nil).Once()
	fx.adminRepo.EXPECT().FindByID(mock.Anything, missing).Return(nil, repository.ErrAdminNotFound).Once()

	got, err := srv.Me(context.Background(), admin.ID)
	require.NoError(t, err)
	assert.Equal(t, admin, got)

	_, err = srv.Me(context.Background(), missing)
	assert.ErrorIs(t, err, domainerrors.ErrAdminNotFound)
}
