package postgres

import (
	"context"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"

	"gorm.io/gorm"
)

const (
	managerCodeSequence = "manager_code"
	// managerCodePattern matches codes whose suffix fits in a BIGINT.
	managerCodePattern = "^" + entity.ManagerCodePrefix + "[0-9]{1,18}$"
)

// nextSequenceValueSQL advances a named counter in one statement. On first use the row is
// seeded with max(seed, highest well-formed manager code + 1); malformed codes are skipped
// by the regular expression and compared numerically, never lexically.
const nextSequenceValueSQL = `INSERT INTO sequences (name, value, updated_at)
SELECT ?, GREATEST(CAST(? AS BIGINT), COALESCE(MAX(CAST(SUBSTRING(manager_code FROM CAST(? AS INT)) AS BIGINT)) + 1, CAST(? AS BIGINT))), NOW()
FROM managers
WHERE manager_code ~ ?
ON CONFLICT (name) DO UPDATE SET value = sequences.value + 1, updated_at = NOW()
RETURNING value`

// sequenceRepository implements the domain.SequenceRepository interface.
type sequenceRepository struct {
	db *gorm.DB
}

// NewSequenceRepository is the constructor for sequenceRepository.
func NewSequenceRepository(db *gorm.DB) repository.SequenceRepository {
	return &sequenceRepository{db: db}
}

// NextManagerCodeNumber atomically advances the manager code counter.
func (repo *sequenceRepository) NextManagerCodeNumber(ctx context.Context) (int64, error) {
	var value int64
	err := repo.db.WithContext(ctx).
		Raw(nextSequenceValueSQL,
			managerCodeSequence,
			entity.ManagerCodeSeed,
			len(entity.ManagerCodePrefix)+1,
			entity.ManagerCodeSeed,
			managerCodePattern,
		).
		Scan(&value).Error
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to allocate manager code")
	}

	return value, nil
}
