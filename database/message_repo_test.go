package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanjulagihan/portfolio-backend/models"
)

func TestMessageRepoMarkRead(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMessageRepo(db)

	id := uuid.New()
	mock.ExpectExec(`UPDATE "messages" SET "read"=\$1 WHERE id = \$2`).
		WithArgs(true, id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	mock.ExpectQuery(`SELECT \* FROM "messages" WHERE id = \$1 ORDER BY "messages"\."id" LIMIT \$2`).
		WithArgs(id, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "read", "replied"}).
			AddRow(id, "Jordan", "jordan@example.com", true, false))

	message, err := repo.MarkRead(id)
	require.NoError(t, err)
	require.NotNil(t, message)
	assert.True(t, message.Read)
	assert.False(t, message.Replied)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMessageRepoMarkReplied(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMessageRepo(db)

	id := uuid.New()
	mock.ExpectExec(`UPDATE "messages" SET "replied"=\$1 WHERE id = \$2`).
		WithArgs(true, id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	mock.ExpectQuery(`SELECT \* FROM "messages" WHERE id = \$1 ORDER BY "messages"\."id" LIMIT \$2`).
		WithArgs(id, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "replied"}).AddRow(id, true))

	message, err := repo.MarkReplied(id)
	require.NoError(t, err)
	require.NotNil(t, message)
	assert.True(t, message.Replied)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMessageRepoAdd(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMessageRepo(db)

	subject := "Hiring"
	message := &models.Message{
		Name:    "Jordan",
		Email:   "jordan@example.com",
		Subject: &subject,
		Message: "Hello",
	}

	mock.ExpectQuery(`INSERT INTO "messages"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New()))

	err := repo.Add(message)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
