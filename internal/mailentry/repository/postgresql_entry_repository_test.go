package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/mailadmin/internal/errors"
	"github.com/allisson/mailadmin/internal/mailentry/domain"
)

func newPostgreSQLEntryRepoWithMock(t *testing.T) (*PostgreSQLEntryRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewPostgreSQLEntryRepository(db), mock, db
}

func TestPostgreSQLEntryRepository_Create(t *testing.T) {
	repo, mock, db := newPostgreSQLEntryRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO mail_entries`).
		WithArgs(int64(1), "info", "alias", "", "a@x.org, b@x.org").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(9)))

	entry, err := domain.NewAlias(1, "info", "a@x.org, b@x.org")
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), entry))
	assert.Equal(t, int64(9), entry.ID)
}

func TestPostgreSQLEntryRepository_GetByName(t *testing.T) {
	repo, mock, db := newPostgreSQLEntryRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .+ FROM mail_entries WHERE domain_id = \$1 AND name = \$2`).
		WithArgs(int64(1), "alice").
		WillReturnRows(sqlmock.NewRows([]string{"id", "domain_id", "name", "kind", "secret", "expansion"}).
			AddRow(int64(3), int64(1), "alice", "login", "{ARGON2ID}hash", ""))

	entry, err := repo.GetByName(context.Background(), 1, "alice")
	require.NoError(t, err)
	assert.Equal(t, domain.KindLogin, entry.Kind)
	assert.Equal(t, "{ARGON2ID}hash", entry.Secret)
}

func TestPostgreSQLEntryRepository_GetByName_NotFound(t *testing.T) {
	repo, mock, db := newPostgreSQLEntryRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .+ FROM mail_entries WHERE domain_id = \$1 AND name = \$2`).
		WithArgs(int64(1), "missing").
		WillReturnError(sql.ErrNoRows)

	entry, err := repo.GetByName(context.Background(), 1, "missing")
	assert.Nil(t, entry)
	assert.True(t, apperrors.Is(err, domain.ErrEntryNotFound))
}

func TestPostgreSQLEntryRepository_Update(t *testing.T) {
	repo, mock, db := newPostgreSQLEntryRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE mail_entries SET secret = \$1, expansion = \$2`).
		WithArgs("", "a@x.org", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	entry := &domain.MailEntry{ID: 3, Kind: domain.KindAlias, Expansion: "a@x.org"}
	assert.NoError(t, repo.Update(context.Background(), entry))
}

func TestPostgreSQLEntryRepository_Delete_NotFound(t *testing.T) {
	repo, mock, db := newPostgreSQLEntryRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM mail_entries WHERE id = \$1`).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 99)
	assert.True(t, apperrors.Is(err, domain.ErrEntryNotFound))
}
