// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"sync"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/domain/service"
	"backoffice/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// credentialService implements the CredentialUsecase interface.
type credentialService struct {
	hasher      service.PasswordHasher
	adminRepo   repository.AdminRepository
	managerRepo repository.ManagerRepository
	// decoy is compared against when no account matched, so a miss costs
	// as much as a wrong password.
	decoy func() string
}

// NewCredentialService is the constructor for credentialService.
func NewCredentialService(
	hasher service.PasswordHasher,
	adminRepo repository.AdminRepository,
	managerRepo repository.ManagerRepository,
) usecase.CredentialUsecase {
	return &credentialService{
		hasher:      hasher,
		adminRepo:   adminRepo,
		managerRepo: managerRepo,
		decoy: sync.OnceValue(func() string {
			digest, err := hasher.Hash(uuid.NewString())
			if err != nil {
				return ""
			}

			return digest
		}),
	}
}

// Hash never includes the plaintext in the returned error.
func (srv *credentialService) Hash(plaintext string) (string, error) {
	digest, err := srv.hasher.Hash(plaintext)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	return digest, nil
}

// Verify with an empty digest always fails but still runs one comparison.
func (srv *credentialService) Verify(plaintext, digest string) bool {
	if digest == "" {
		if decoy := srv.decoy(); decoy != "" {
			srv.hasher.Check(plaintext, decoy)
		}

		return false
	}

	return srv.hasher.Check(plaintext, digest)
}

// AssertUniqueEmail checks the normalized email against accounts of the given kind.
// The unique index on lower(email) remains the authoritative guard; this check
// only produces the friendly error before any write is attempted.
func (srv *credentialService) AssertUniqueEmail(ctx context.Context, kind entity.AccountKind, email string, excludeID *uuid.UUID) error {
	email = entity.NormalizeEmail(email)

	var ownerID uuid.UUID
	switch kind {
	case entity.AccountKindAdmin:
		admin, err := srv.adminRepo.FindByEmail(ctx, email)
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to look up admin email")
		}
		ownerID = admin.ID
	case entity.AccountKindManager:
		manager, err := srv.managerRepo.FindByEmail(ctx, email)
		if errors.Is(err, repository.ErrManagerNotFound) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to look up manager email")
		}
		ownerID = manager.ID
	default:
		return errors.Errorf("unknown account kind %q", kind)
	}

	if excludeID != nil && *excludeID == ownerID {
		return nil
	}

	return domainerrors.ErrDuplicateEmail
}
