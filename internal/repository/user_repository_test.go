package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*UserRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewUserRepo(db), mock
}

func expectOwnerLookup(mock sqlmock.Sqlmock, id, email string) {
	mock.ExpectQuery(regexp.QuoteMeta("SELECT email FROM users WHERE id=? FOR UPDATE")).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"email"}).AddRow(email))
}

func TestDeleteCascade_RemovesEveryOwnedTable(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	expectOwnerLookup(mock, "u-1", "alice@example.com")
	for _, table := range ownedTables {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM "+table+" WHERE user_email=?")).
			WithArgs("alice@example.com").
			WillReturnResult(sqlmock.NewResult(0, 2))
	}
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id=?")).
		WithArgs("u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteCascade(context.Background(), "u-1"))
	assert.NoError(t, mock.ExpectationsWereMet(),
		"every owned table and the user row must be deleted in one transaction")
}

func TestDeleteCascade_RollsBackOnDependentFailure(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	expectOwnerLookup(mock, "u-1", "alice@example.com")
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM "+ownedTables[0]+" WHERE user_email=?")).
		WithArgs("alice@example.com").
		WillReturnResult(sqlmock.NewResult(0, 1))
	boom := errors.New("lock wait timeout")
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM "+ownedTables[1]+" WHERE user_email=?")).
		WithArgs("alice@example.com").
		WillReturnError(boom)
	mock.ExpectRollback()

	err := repo.DeleteCascade(context.Background(), "u-1")
	require.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet(),
		"a failed dependent delete must roll the transaction back, not commit")
}

func TestDeleteCascade_UnknownUser(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT email FROM users WHERE id=? FOR UPDATE")).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	err := repo.DeleteCascade(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
