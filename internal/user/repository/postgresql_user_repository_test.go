package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/mailadmin/internal/errors"
	"github.com/allisson/mailadmin/internal/user/domain"
)

func newPostgreSQLUserRepoWithMock(t *testing.T) (*PostgreSQLUserRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewPostgreSQLUserRepository(db), mock, db
}

func TestPostgreSQLUserRepository_Create(t *testing.T) {
	repo, mock, db := newPostgreSQLUserRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("alice", false).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	user := &domain.User{Username: "alice"}
	err := repo.Create(context.Background(), user)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLUserRepository_Create_Duplicate(t *testing.T) {
	repo, mock, db := newPostgreSQLUserRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("alice", false).
		WillReturnError(errors.New(`pq: duplicate key value violates unique constraint "users_username_key"`))

	err := repo.Create(context.Background(), &domain.User{Username: "alice"})
	require.Error(t, err)

	var exists *domain.UserAlreadyExistsError
	require.ErrorAs(t, err, &exists)
	assert.Equal(t, "alice", exists.Username)
	assert.True(t, apperrors.Is(err, apperrors.ErrConflict))
}

func TestPostgreSQLUserRepository_GetByID(t *testing.T) {
	repo, mock, db := newPostgreSQLUserRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, username, is_superuser FROM users WHERE id = \$1`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "is_superuser"}).
			AddRow(int64(7), "alice", true))

	user, err := repo.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.True(t, user.IsSuperuser)
}

func TestPostgreSQLUserRepository_GetByID_NotFound(t *testing.T) {
	repo, mock, db := newPostgreSQLUserRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, username, is_superuser FROM users WHERE id = \$1`).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	user, err := repo.GetByID(context.Background(), 99)
	assert.Nil(t, user)
	assert.True(t, apperrors.Is(err, domain.ErrUserNotFound))
}

func TestPostgreSQLUserRepository_List(t *testing.T) {
	repo, mock, db := newPostgreSQLUserRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, username, is_superuser FROM users ORDER BY username`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "is_superuser"}).
			AddRow(int64(1), "alice", true).
			AddRow(int64(2), "bob", false))

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, "bob", users[1].Username)
}
