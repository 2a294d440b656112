package impl

import (
	"context"

	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// integrityGuard implements the IntegrityGuard interface. It holds no state and
// always reads the current rows through the repositories it was built with.
type integrityGuard struct {
	managerRepo  repository.ManagerRepository
	offeringRepo repository.OfferingRepository
}

// NewIntegrityGuard is the constructor for integrityGuard.
func NewIntegrityGuard(managerRepo repository.ManagerRepository, offeringRepo repository.OfferingRepository) usecase.IntegrityGuard {
	return &integrityGuard{
		managerRepo:  managerRepo,
		offeringRepo: offeringRepo,
	}
}

// CanDeleteArea checks managers before services and stops at the first reference found.
func (g *integrityGuard) CanDeleteArea(ctx context.Context, areaID uuid.UUID) error {
	hasManagers, err := g.managerRepo.ExistsByArea(ctx, areaID)
	if err != nil {
		return errors.Wrap(err, "failed to check managers of area")
	}
	if hasManagers {
		return domainerrors.ErrAreaHasManagers
	}

	hasServices, err := g.offeringRepo.ExistsByArea(ctx, areaID)
	if err != nil {
		return errors.Wrap(err, "failed to check services of area")
	}
	if hasServices {
		return domainerrors.ErrAreaHasServices
	}

	return nil
}
