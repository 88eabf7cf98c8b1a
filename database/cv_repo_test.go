package database

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCVRepoSetActiveClearsThenSetsInOneTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCVRepo(db)

	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "cv_files" SET "is_active"=\$1,"updated_at"=\$2 WHERE is_active = \$3`).
		WithArgs(false, sqlmock.AnyArg(), true).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`UPDATE "cv_files" SET "is_active"=\$1,"updated_at"=\$2 WHERE id = \$3`).
		WithArgs(true, sqlmock.AnyArg(), id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.SetActive(id))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// The target row not existing must roll the clear step back, leaving the
// previously active file untouched.
func TestCVRepoSetActiveUnknownIDRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCVRepo(db)

	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "cv_files" SET "is_active"=\$1,"updated_at"=\$2 WHERE is_active = \$3`).
		WithArgs(false, sqlmock.AnyArg(), true).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "cv_files" SET "is_active"=\$1,"updated_at"=\$2 WHERE id = \$3`).
		WithArgs(true, sqlmock.AnyArg(), id).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.SetActive(id)
	require.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCVRepoSetActiveSetFailureRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCVRepo(db)

	id := uuid.New()
	boom := errors.New("connection reset")

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "cv_files" SET "is_active"=\$1,"updated_at"=\$2 WHERE is_active = \$3`).
		WithArgs(false, sqlmock.AnyArg(), true).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "cv_files" SET "is_active"=\$1,"updated_at"=\$2 WHERE id = \$3`).
		WithArgs(true, sqlmock.AnyArg(), id).
		WillReturnError(boom)
	mock.ExpectRollback()

	err := repo.SetActive(id)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCVRepoFindActiveNoneIsNotAnError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCVRepo(db)

	mock.ExpectQuery(`SELECT \* FROM "cv_files" WHERE is_active = \$1 ORDER BY created_at desc`).
		WithArgs(true, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "file_name"}))

	file, err := repo.FindActive()
	require.NoError(t, err)
	assert.Nil(t, file)
	assert.NoError(t, mock.ExpectationsWereMet())
}
