package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/mailadmin/internal/auth/domain"
	authUseCase "github.com/allisson/mailadmin/internal/auth/usecase"
)

// AuditMiddleware records successful administrative mutations in the signed
// audit trail. It runs after the handler: only authenticated POST/PUT/PATCH/
// DELETE requests that completed below 400 are recorded. Recording failures
// are logged and swallowed; the mutation already happened and cannot be undone
// by a failed audit write.
func AuditMiddleware(
	auditLogUseCase authUseCase.AuditLogUseCase,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if !isMutation(c.Request.Method) || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		identity, ok := GetIdentity(c.Request.Context())
		if !ok {
			return
		}

		log := &authDomain.AuditLog{
			RequestID:  requestid.Get(c),
			UserID:     identity.UserID,
			Username:   identity.Username,
			Method:     c.Request.Method,
			Path:       c.Request.URL.Path,
			StatusCode: c.Writer.Status(),
			CreatedAt:  time.Now().UTC(),
		}

		if err := auditLogUseCase.Record(c.Request.Context(), log); err != nil {
			logger.Error("failed to record audit log",
				slog.String("request_id", log.RequestID),
				slog.String("path", log.Path),
				slog.Any("error", err),
			)
		}
	}
}

func isMutation(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}
