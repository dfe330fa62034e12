package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	authDomain "github.com/allisson/mailadmin/internal/auth/domain"
	apperrors "github.com/allisson/mailadmin/internal/errors"
)

// auditTestRouter wires the identity and audit middleware in front of a
// handler that responds with the given status.
func auditTestRouter(
	identity *authDomain.Identity,
	auditUC *mockAuditLogUseCase,
	status int,
) *gin.Engine {
	router := gin.New()
	if identity != nil {
		router.Use(identityMiddleware(identity))
	}
	router.Use(AuditMiddleware(auditUC, createTestLogger()))
	handler := func(c *gin.Context) {
		c.JSON(status, gin.H{"message": "done"})
	}
	router.GET("/resource", handler)
	router.POST("/resource", handler)
	router.PUT("/resource", handler)
	router.PATCH("/resource", handler)
	router.DELETE("/resource", handler)
	return router
}

func TestAuditMiddleware_RecordsMutations(t *testing.T) {
	methods := []string{http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete}

	for _, method := range methods {
		t.Run(method, func(t *testing.T) {
			identity := testIdentity()
			auditUC := &mockAuditLogUseCase{}
			auditUC.On("Record", mock.Anything, mock.MatchedBy(func(log *authDomain.AuditLog) bool {
				return log.UserID == identity.UserID &&
					log.Username == identity.Username &&
					log.Method == method &&
					log.Path == "/resource" &&
					log.StatusCode == http.StatusOK
			})).Return(nil).Once()

			router := auditTestRouter(identity, auditUC, http.StatusOK)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(method, "/resource", nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			auditUC.AssertExpectations(t)
		})
	}
}

func TestAuditMiddleware_SkipsReads(t *testing.T) {
	auditUC := &mockAuditLogUseCase{}
	router := auditTestRouter(testIdentity(), auditUC, http.StatusOK)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/resource", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	auditUC.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
}

func TestAuditMiddleware_SkipsFailedMutations(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusUnprocessableEntity, http.StatusInternalServerError} {
		auditUC := &mockAuditLogUseCase{}
		router := auditTestRouter(testIdentity(), auditUC, status)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/resource", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, status, w.Code)
		auditUC.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
	}
}

func TestAuditMiddleware_SkipsUnauthenticatedRequests(t *testing.T) {
	auditUC := &mockAuditLogUseCase{}
	router := auditTestRouter(nil, auditUC, http.StatusOK)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/resource", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	auditUC.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
}

func TestAuditMiddleware_SwallowsRecordFailures(t *testing.T) {
	auditUC := &mockAuditLogUseCase{}
	auditUC.On("Record", mock.Anything, mock.Anything).
		Return(apperrors.New("audit store unavailable")).Once()

	router := auditTestRouter(testIdentity(), auditUC, http.StatusCreated)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/resource", nil)
	router.ServeHTTP(w, req)

	// The client must not see the audit failure.
	assert.Equal(t, http.StatusCreated, w.Code)
	auditUC.AssertExpectations(t)
}
