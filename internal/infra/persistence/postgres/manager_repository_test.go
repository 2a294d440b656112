package postgres

import (
	"context"
	"testing"
	"time"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *entity.Manager {
	return &entity.Manager{
		ID:             uuid.New(),
		ManagerCode:    "AWM1002",
		FirstName:      "Ada",
		LastName:       "Lovelace",
		Email:          "ada@example.com",
		PasswordHash:   "$2a$10$hash",
		Phone:          "5551234567",
		AssignedAreaID: uuid.New(),
		Status:         entity.ManagerStatusActive,
	}
}

func TestManagerRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewManagerRepository(db)

	mock.ExpectExec(`INSERT INTO "managers"`).WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), newTestManager()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestManagerRepository_Create_ConstraintMapping(t *testing.T) {
	tests := []struct {
		name    string
		pgErr   *pgconn.PgError
		wantErr error
	}{
		{
			name:    "manager code collision",
			pgErr:   &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: constraintManagersManagerCode},
			wantErr: domainerrors.ErrManagerCodeTaken,
		},
		{
			name:    "email collision",
			pgErr:   &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: constraintManagersEmail},
			wantErr: domainerrors.ErrDuplicateEmail,
		},
		{
			name:    "missing area",
			pgErr:   &pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: constraintManagersArea},
			wantErr: domainerrors.ErrInvalidReference,
		},
		{
			name:    "check violation",
			pgErr:   &pgconn.PgError{Code: pgCheckViolation, ConstraintName: "managers_phone_check"},
			wantErr: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewManagerRepository(db)

			mock.ExpectExec(`INSERT INTO "managers"`).WillReturnError(tt.pgErr)

			err := repo.Create(context.Background(), newTestManager())
			assert.ErrorIs(t, err, tt.wantErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestManagerRepository_FindByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewManagerRepository(db)
	want := newTestManager()
	now := time.Now().UTC().Truncate(time.Second)

	rows := sqlmock.NewRows([]string{
		"id", "manager_code", "first_name", "last_name", "email", "password_hash",
		"phone", "assigned_area_id", "status", "created_at", "updated_at",
	}).AddRow(
		want.ID.String(), want.ManagerCode, want.FirstName, want.LastName, want.Email, want.PasswordHash,
		want.Phone, want.AssignedAreaID.String(), string(want.Status), now, now,
	)
	mock.ExpectQuery(`SELECT \* FROM "managers" WHERE id = \$1`).WillReturnRows(rows)

	got, err := repo.FindByID(context.Background(), want.ID)
	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, "AWM1002", got.ManagerCode)
	assert.Equal(t, want.AssignedAreaID, got.AssignedAreaID)
	assert.Equal(t, entity.ManagerStatusActive, got.Status)
	assert.Equal(t, now, got.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestManagerRepository_FindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewManagerRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "managers" WHERE id = \$1`).WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrManagerNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestManagerRepository_FindByEmail_UsesLowercaseIndex(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewManagerRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "managers" WHERE lower\(email\) = \$1`).WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByEmail(context.Background(), " Ada@Example.COM ")
	assert.ErrorIs(t, err, repository.ErrManagerNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestManagerRepository_Update_EmailCollision(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewManagerRepository(db)

	mock.ExpectExec(`UPDATE "managers" SET`).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: constraintManagersEmail})

	err := repo.Update(context.Background(), newTestManager())
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateEmail)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestManagerRepository_Update_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewManagerRepository(db)

	mock.ExpectExec(`UPDATE "managers" SET`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), newTestManager())
	assert.ErrorIs(t, err, repository.ErrManagerNotFound)
}

func TestManagerRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewManagerRepository(db)
	id := uuid.New()

	mock.ExpectExec(`DELETE FROM "managers" WHERE id = \$1`).WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "managers" WHERE id = \$1`).WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), id))
	assert.ErrorIs(t, repo.Delete(context.Background(), id), repository.ErrManagerNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestManagerRepository_ExistsByArea(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewManagerRepository(db)
	areaID := uuid.New()

	mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM managers WHERE assigned_area_id = \$1\)`).
		WithArgs(areaID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByArea(context.Background(), areaID)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestManagerRepository_CountByStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewManagerRepository(db)

	mock.ExpectQuery(`SELECT status, COUNT\(\*\) AS total FROM managers GROUP BY status`).
		WillReturnRows(sqlmock.NewRows([]string{"status", "total"}).
			AddRow("active", int64(3)).
			AddRow("suspended", int64(1)))

	counts, err := repo.CountByStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[entity.ManagerStatus]int64{
		entity.ManagerStatusActive:    3,
		entity.ManagerStatusSuspended: 1,
	}, counts)
	assert.NoError(t, mock.ExpectationsWereMet())
}
