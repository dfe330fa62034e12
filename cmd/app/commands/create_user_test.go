package commands

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	userDomain "github.com/allisson/mailadmin/internal/user/domain"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *userDomain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id int64) (*userDomain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*userDomain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}

func (m *mockUserRepository) List(ctx context.Context) ([]*userDomain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*userDomain.User), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunCreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("text output", func(t *testing.T) {
		repo := &mockUserRepository{}
		repo.On("Create", ctx, mock.MatchedBy(func(u *userDomain.User) bool {
			return u.Username == "admin" && u.IsSuperuser
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*userDomain.User).ID = 1
		}).Return(nil)

		var out bytes.Buffer
		err := RunCreateUser(ctx, repo, discardLogger(), "admin", true, "text", IOTuple{Writer: &out})

		require.NoError(t, err)
		require.Contains(t, out.String(), "admin")
		require.Contains(t, out.String(), "true")
		repo.AssertExpectations(t)
	})

	t.Run("json output", func(t *testing.T) {
		repo := &mockUserRepository{}
		repo.On("Create", ctx, mock.Anything).Return(nil)

		var out bytes.Buffer
		err := RunCreateUser(ctx, repo, discardLogger(), "mailuser", false, "json", IOTuple{Writer: &out})

		require.NoError(t, err)
		require.Contains(t, out.String(), `"username": "mailuser"`)
		require.Contains(t, out.String(), `"is_superuser": false`)
		repo.AssertExpectations(t)
	})

	t.Run("duplicate username", func(t *testing.T) {
		repo := &mockUserRepository{}
		repo.On("Create", ctx, mock.Anything).Return(&userDomain.UserAlreadyExistsError{Username: "admin"})

		var out bytes.Buffer
		err := RunCreateUser(ctx, repo, discardLogger(), "admin", false, "text", IOTuple{Writer: &out})

		require.Error(t, err)
		require.Contains(t, err.Error(), "user already exists")
		repo.AssertExpectations(t)
	})
}
