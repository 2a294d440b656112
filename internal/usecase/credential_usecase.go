// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"backoffice/internal/domain/entity"

	"github.com/google/uuid"
)

// CredentialUsecase hashes and verifies passwords and guards email uniqueness
// for every credential-bearing account kind.
type CredentialUsecase interface {
	// Hash returns a salted digest. Failures surface as ErrPasswordHashFailed.
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches digest. A malformed digest is a mismatch.
	// An empty digest stands for a missing account and takes as long as a mismatch.
	Verify(plaintext, digest string) bool
	// AssertUniqueEmail returns ErrDuplicateEmail when another account of the kind
	// already uses the normalized email. excludeID skips the caller's own record.
	AssertUniqueEmail(ctx context.Context, kind entity.AccountKind, email string, excludeID *uuid.UUID) error
}

// SequenceAllocator hands out manager codes.
type SequenceAllocator interface {
	// NextManagerCode returns a code that has never been issued before.
	NextManagerCode(ctx context.Context) (string, error)
}

// IntegrityGuard decides whether destructive operations may proceed.
type IntegrityGuard interface {
	// CanDeleteArea returns ErrAreaHasManagers or ErrAreaHasServices while the
	// area is still referenced. Managers are checked first.
	CanDeleteArea(ctx context.Context, areaID uuid.UUID) error
}
