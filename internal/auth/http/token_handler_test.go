package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/mailadmin/internal/auth/domain"
	"github.com/allisson/mailadmin/internal/auth/http/dto"
	"github.com/allisson/mailadmin/internal/httputil"
)

func tokenTestRouter(identity *authDomain.Identity, handler *TokenHandler) *gin.Engine {
	router := gin.New()
	if identity != nil {
		router.Use(identityMiddleware(identity))
	}
	router.GET("/v1/tokens", handler.ListHandler)
	router.POST("/v1/tokens", handler.CreateHandler)
	router.POST("/v1/tokens/revoke", handler.RevokeHandler)
	return router
}

func TestTokenHandler_ListHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		identity := testIdentity()
		mockTokenUC := &mockTokenUseCase{}
		tokens := []*authDomain.AuthToken{
			{ID: 1, UserID: identity.UserID, Token: "aaaa", Label: "laptop"},
			{ID: 2, UserID: identity.UserID, Token: "bbbb", Label: "ci"},
		}
		mockTokenUC.On("List", mock.Anything, identity).Return(tokens, nil).Once()

		router := tokenTestRouter(identity, NewTokenHandler(mockTokenUC, createTestLogger()))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/tokens", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.ListTokensResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response.Tokens, 2)
		assert.Equal(t, "aaaa", response.Tokens[0].Token)
		assert.Equal(t, "laptop", response.Tokens[0].Label)
		assert.Equal(t, "ci", response.Tokens[1].Label)

		mockTokenUC.AssertExpectations(t)
	})

	t.Run("NoIdentity", func(t *testing.T) {
		mockTokenUC := &mockTokenUseCase{}
		router := tokenTestRouter(nil, NewTokenHandler(mockTokenUC, createTestLogger()))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/tokens", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockTokenUC.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})
}

func TestTokenHandler_CreateHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		identity := testIdentity()
		mockTokenUC := &mockTokenUseCase{}
		created := &authDomain.AuthToken{
			ID:     3,
			UserID: identity.UserID,
			Token:  "cccc",
			Label:  "backup",
		}
		mockTokenUC.On("Create", mock.Anything, identity, "backup").Return(created, nil).Once()

		router := tokenTestRouter(identity, NewTokenHandler(mockTokenUC, createTestLogger()))

		body, _ := json.Marshal(dto.CreateTokenRequest{Label: "backup"})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/tokens", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response dto.TokenResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "cccc", response.Token)
		assert.Equal(t, "backup", response.Label)

		mockTokenUC.AssertExpectations(t)
	})

	t.Run("InvalidJSON", func(t *testing.T) {
		mockTokenUC := &mockTokenUseCase{}
		router := tokenTestRouter(testIdentity(), NewTokenHandler(mockTokenUC, createTestLogger()))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/tokens", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockTokenUC.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("MissingLabel", func(t *testing.T) {
		mockTokenUC := &mockTokenUseCase{}
		router := tokenTestRouter(testIdentity(), NewTokenHandler(mockTokenUC, createTestLogger()))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/tokens", bytes.NewReader([]byte(`{}`)))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var response httputil.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "validation_error", response.Error)

		mockTokenUC.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestTokenHandler_RevokeHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		identity := testIdentity()
		mockTokenUC := &mockTokenUseCase{}
		mockTokenUC.On("Revoke", mock.Anything, identity, "bbbb").Return("ci", nil).Once()

		router := tokenTestRouter(identity, NewTokenHandler(mockTokenUC, createTestLogger()))

		body, _ := json.Marshal(dto.RevokeTokenRequest{Token: "bbbb"})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/tokens/revoke", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.RevokeTokenResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "ci", response.Label)

		mockTokenUC.AssertExpectations(t)
	})

	t.Run("TokenInUse", func(t *testing.T) {
		identity := testIdentity()
		mockTokenUC := &mockTokenUseCase{}
		mockTokenUC.On("Revoke", mock.Anything, identity, identity.Token).
			Return("", &authDomain.TokenInUseError{Token: identity.Token}).Once()

		router := tokenTestRouter(identity, NewTokenHandler(mockTokenUC, createTestLogger()))

		body, _ := json.Marshal(dto.RevokeTokenRequest{Token: identity.Token})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/tokens/revoke", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		mockTokenUC.AssertExpectations(t)
	})

	t.Run("UnknownToken", func(t *testing.T) {
		identity := testIdentity()
		mockTokenUC := &mockTokenUseCase{}
		mockTokenUC.On("Revoke", mock.Anything, identity, "zzzz").
			Return("", &authDomain.BadTokenError{Token: "zzzz"}).Once()

		router := tokenTestRouter(identity, NewTokenHandler(mockTokenUC, createTestLogger()))

		body, _ := json.Marshal(dto.RevokeTokenRequest{Token: "zzzz"})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/tokens/revoke", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		mockTokenUC.AssertExpectations(t)
	})
}
