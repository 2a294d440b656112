package impl

import (
	"context"
	"testing"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	mockRepo "backoffice/internal/mocks/repository"
	mockSvc "backoffice/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type credentialFixtures struct {
	hasher      *mockSvc.MockPasswordHasher
	adminRepo   *mockRepo.MockAdminRepository
	managerRepo *mockRepo.MockManagerRepository
}

func createTestCredentialService(t *testing.T) (*credentialService, credentialFixtures) {
	fx := credentialFixtures{
		hasher:      mockSvc.NewMockPasswordHasher(t),
		adminRepo:   mockRepo.NewMockAdminRepository(t),
		managerRepo: mockRepo.NewMockManagerRepository(t),
	}
	srv := NewCredentialService(fx.hasher, fx.adminRepo, fx.managerRepo).(*credentialService)

	return srv, fx
}

func TestCredentialService_Hash(t *testing.T) {
	srv, fx := createTestCredentialService(t)

	fx.hasher.EXPECT().Hash("Password123!").Return("$2a$04$digest", nil).Once()

	digest, err := srv.Hash("Password123!")
	require.NoError(t, err)
	assert.Equal(t, "$2a$04$digest", digest)
}

func TestCredentialService_Hash_Failure(t *testing.T) {
	srv, fx := createTestCredentialService(t)

	fx.hasher.EXPECT().Hash("s3cret-value").Return("", errors.New("bcrypt: password length exceeds 72 bytes")).Once()

	_, err := srv.Hash("s3cret-value")
	require.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
	assert.NotContains(t, err.Error(), "s3cret-value")
}

func TestCredentialService_Verify(t *testing.T) {
	srv, fx := createTestCredentialService(t)

	fx.hasher.EXPECT().Check("right", "$2a$04$digest").Return(true).Once()
	fx.hasher.EXPECT().Check("wrong", "$2a$04$digest").Return(false).Once()

	assert.True(t, srv.Verify("right", "$2a$04$digest"))
	assert.False(t, srv.Verify("wrong", "$2a$04$digest"))
}

func TestCredentialService_Verify_MissingAccountStillCompares(t *testing.T) {
	srv, fx := createTestCredentialService(t)

	fx.hasher.EXPECT().Hash(mock.AnythingOfType("string")).Return("$2a$04$decoy", nil).Once()
	fx.hasher.EXPECT().Check("right", "$2a$04$decoy").Return(true).Once()
	fx.hasher.EXPECT().Check("other", "$2a$04$decoy").Return(false).Once()

	assert.False(t, srv.Verify("right", ""))
	assert.False(t, srv.Verify("other", ""))
}

func TestCredentialService_Verify_DecoyHashFailure(t *testing.T) {
	srv, fx := createTestCredentialService(t)

	fx.hasher.EXPECT().Hash(mock.AnythingOfType("string")).Return("", errors.New("bcrypt generate")).Once()

	assert.False(t, srv.Verify("right", ""))
	assert.False(t, srv.Verify("right", ""))
}

func TestCredentialService_AssertUniqueEmail(t *testing.T) {
	ownerID := uuid.New()
	otherID := uuid.New()

	tests := []struct {
		name      string
		kind      entity.AccountKind
		email     string
		excludeID *uuid.UUID
		setup     func(fx credentialFixtures)
		wantErr   error
	}{
		{
			name:  "admin email free",
			kind:  entity.AccountKindAdmin,
			email: "  New@Example.com ",
			setup: func(fx credentialFixtures) {
				fx.adminRepo.EXPECT().FindByEmail(mock.Anything, "new@example.com").Return(nil, repository.ErrAdminNotFound).Once()
			},
		},
		{
			name:  "admin email differs only by case",
			kind:  entity.AccountKindAdmin,
			email: "A@x.com",
			setup: func(fx credentialFixtures) {
				fx.adminRepo.EXPECT().FindByEmail(mock.Anything, "a@x.com").Return(&entity.Admin{ID: ownerID, Email: "a@x.com"}, nil).Once()
			},
			wantErr: domainerrors.ErrDuplicateEmail,
		},
		{
			name:  "manager email taken",
			kind:  entity.AccountKindManager,
			email: "a@x.com",
			setup: func(fx credentialFixtures) {
				fx.managerRepo.EXPECT().FindByEmail(mock.Anything, "a@x.com").Return(&entity.Manager{ID: ownerID}, nil).Once()
			},
			wantErr: domainerrors.ErrDuplicateEmail,
		},
		{
			name:      "manager keeps own email",
			kind:      entity.AccountKindManager,
			email:     "a@x.com",
			excludeID: &ownerID,
			setup: func(fx credentialFixtures) {
				fx.managerRepo.EXPECT().FindByEmail(mock.Anything, "a@x.com").Return(&entity.Manager{ID: ownerID}, nil).Once()
			},
		},
		{
			name:      "manager takes someone else's email",
			kind:      entity.AccountKindManager,
			email:     "a@x.com",
			excludeID: &otherID,
			setup: func(fx credentialFixtures) {
				fx.managerRepo.EXPECT().FindByEmail(mock.Anything, "a@x.com").Return(&entity.Manager{ID: ownerID}, nil).Once()
			},
			wantErr: domainerrors.ErrDuplicateEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, fx := createTestCredentialService(t)
			tt.setup(fx)

			err := srv.AssertUniqueEmail(context.Background(), tt.kind, tt.email, tt.excludeID)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestCredentialService_AssertUniqueEmail_StorageFailure(t *testing.T) {
	srv, fx := createTestCredentialService(t)
	storageErr := domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "failed to find manager")

	fx.managerRepo.EXPECT().FindByEmail(mock.Anything, "a@x.com").Return(nil, storageErr).Once()

	err := srv.AssertUniqueEmail(context.Background(), entity.AccountKindManager, "a@x.com", nil)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrDuplicateEmail)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}

func TestCredentialService_AssertUniqueEmail_UnknownKind(t *testing.T) {
	srv, _ := createTestCredentialService(t)

	err := srv.AssertUniqueEmail(context.Background(), entity.AccountKind("worker"), "a@x.com", nil)
	assert.ErrorContains(t, err, `unknown account kind "worker"`)
}
