package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/mailadmin/internal/auth/domain"
	authHTTP "github.com/allisson/mailadmin/internal/auth/http"
	"github.com/allisson/mailadmin/internal/httputil"
	userDomain "github.com/allisson/mailadmin/internal/user/domain"
	"github.com/allisson/mailadmin/internal/user/http/dto"
	"github.com/allisson/mailadmin/internal/user/usecase"
)

// mockUserUseCase is a mock implementation of UserUseCase for testing.
type mockUserUseCase struct {
	mock.Mock
}

func (m *mockUserUseCase) List(ctx context.Context, identity *authDomain.Identity) ([]*userDomain.User, error) {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*userDomain.User), args.Error(1)
}

func (m *mockUserUseCase) Create(
	ctx context.Context,
	identity *authDomain.Identity,
	input *usecase.CreateUserInput,
) (*userDomain.User, error) {
	args := m.Called(ctx, identity, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userDomain.User), args.Error(1)
}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func createTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func superuserIdentity() *authDomain.Identity {
	return &authDomain.Identity{
		Token:       "fedcba9876543210fedcba9876543210",
		UserID:      1,
		Username:    "root",
		IsSuperuser: true,
	}
}

func userTestRouter(identity *authDomain.Identity, handler *UserHandler) *gin.Engine {
	router := gin.New()
	if identity != nil {
		router.Use(func(c *gin.Context) {
			c.Request = c.Request.WithContext(authHTTP.WithIdentity(c.Request.Context(), identity))
			c.Next()
		})
	}
	router.GET("/v1/users", handler.ListHandler)
	router.POST("/v1/users", handler.CreateHandler)
	return router
}

func TestUserHandler_ListHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		identity := superuserIdentity()
		mockUC := &mockUserUseCase{}
		users := []*userDomain.User{
			{ID: 1, Username: "root", IsSuperuser: true},
			{ID: 2, Username: "alice", IsSuperuser: false},
		}
		mockUC.On("List", mock.Anything, identity).Return(users, nil).Once()

		router := userTestRouter(identity, NewUserHandler(mockUC, createTestLogger()))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/users", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.ListUsersResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response.Users, 2)
		assert.Equal(t, "root", response.Users[0].Username)
		assert.True(t, response.Users[0].IsSuperuser)
		assert.Equal(t, "alice", response.Users[1].Username)
		assert.False(t, response.Users[1].IsSuperuser)

		mockUC.AssertExpectations(t)
	})

	t.Run("NotSuperuser", func(t *testing.T) {
		identity := &authDomain.Identity{UserID: 2, Username: "alice"}
		mockUC := &mockUserUseCase{}
		mockUC.On("List", mock.Anything, identity).
			Return(nil, &authDomain.PermissionDeniedError{Subject: "users"}).Once()

		router := userTestRouter(identity, NewUserHandler(mockUC, createTestLogger()))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/users", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		mockUC.AssertExpectations(t)
	})

	t.Run("NoIdentity", func(t *testing.T) {
		mockUC := &mockUserUseCase{}
		router := userTestRouter(nil, NewUserHandler(mockUC, createTestLogger()))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/users", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockUC.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})
}

func TestUserHandler_CreateHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		identity := superuserIdentity()
		mockUC := &mockUserUseCase{}
		created := &userDomain.User{ID: 3, Username: "bob", IsSuperuser: false}
		mockUC.On("Create", mock.Anything, identity, mock.MatchedBy(func(input *usecase.CreateUserInput) bool {
			return input.Username == "bob" && !input.IsSuperuser
		})).Return(created, nil).Once()

		router := userTestRouter(identity, NewUserHandler(mockUC, createTestLogger()))

		body, _ := json.Marshal(dto.CreateUserRequest{Username: "bob"})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/users", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response dto.UserResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, int64(3), response.ID)
		assert.Equal(t, "bob", response.Username)

		mockUC.AssertExpectations(t)
	})

	t.Run("InvalidJSON", func(t *testing.T) {
		mockUC := &mockUserUseCase{}
		router := userTestRouter(superuserIdentity(), NewUserHandler(mockUC, createTestLogger()))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/users", bytes.NewReader([]byte("{broken")))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockUC.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("ValidationFailure", func(t *testing.T) {
		testCases := []struct {
			name string
			body string
		}{
			{"missing username", `{}`},
			{"whitespace username", `{"username": " alice "}`},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				mockUC := &mockUserUseCase{}
				router := userTestRouter(superuserIdentity(), NewUserHandler(mockUC, createTestLogger()))

				w := httptest.NewRecorder()
				req := httptest.NewRequest(http.MethodPost, "/v1/users", bytes.NewReader([]byte(tc.body)))
				req.Header.Set("Content-Type", "application/json")
				router.ServeHTTP(w, req)

				assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

				var response httputil.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.Equal(t, "validation_error", response.Error)

				mockUC.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("DuplicateUsername", func(t *testing.T) {
		identity := superuserIdentity()
		mockUC := &mockUserUseCase{}
		mockUC.On("Create", mock.Anything, identity, mock.Anything).
			Return(nil, &userDomain.UserAlreadyExistsError{Username: "alice"}).Once()

		router := userTestRouter(identity, NewUserHandler(mockUC, createTestLogger()))

		body, _ := json.Marshal(dto.CreateUserRequest{Username: "alice"})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/users", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		mockUC.AssertExpectations(t)
	})
}
