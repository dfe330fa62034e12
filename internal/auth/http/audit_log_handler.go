package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/allisson/mailadmin/internal/auth/http/dto"
	authUseCase "github.com/allisson/mailadmin/internal/auth/usecase"
	apperrors "github.com/allisson/mailadmin/internal/errors"
	"github.com/allisson/mailadmin/internal/httputil"
)

const (
	defaultAuditLogLimit = 50
	maxAuditLogLimit     = 500
)

// AuditLogHandler serves the signed administrative audit trail. Superuser
// only; the check lives in the use case.
type AuditLogHandler struct {
	auditLogUseCase authUseCase.AuditLogUseCase
	logger          *slog.Logger
}

// NewAuditLogHandler creates a new audit log handler with required dependencies.
func NewAuditLogHandler(auditLogUseCase authUseCase.AuditLogUseCase, logger *slog.Logger) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogUseCase: auditLogUseCase,
		logger:          logger,
	}
}

// ListHandler returns a page of audit records, newest first.
// GET /v1/audit-logs?limit=N&offset=M
func (h *AuditLogHandler) ListHandler(c *gin.Context) {
	identity, ok := GetIdentity(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	limit := parsePositiveInt(c.Query("limit"), defaultAuditLogLimit)
	if limit > maxAuditLogLimit {
		limit = maxAuditLogLimit
	}
	offset := parsePositiveInt(c.Query("offset"), 0)

	logs, err := h.auditLogUseCase.List(c.Request.Context(), identity, limit, offset)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapAuditLogsToListResponse(logs, limit, offset))
}

// parsePositiveInt parses a query value, falling back on empty, malformed or
// negative input.
func parsePositiveInt(value string, fallback int) int {
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 0 {
		return fallback
	}
	return parsed
}
