// Package http provides HTTP handlers for mail domain administration.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authHTTP "github.com/allisson/mailadmin/internal/auth/http"
	apperrors "github.com/allisson/mailadmin/internal/errors"
	"github.com/allisson/mailadmin/internal/httputil"
	"github.com/allisson/mailadmin/internal/maildomain/http/dto"
	"github.com/allisson/mailadmin/internal/maildomain/usecase"
	customValidation "github.com/allisson/mailadmin/internal/validation"
)

// DomainHandler handles HTTP requests for mail domain administration.
type DomainHandler struct {
	domainUseCase usecase.DomainUseCase
	logger        *slog.Logger
}

// NewDomainHandler creates a new domain handler with required dependencies.
func NewDomainHandler(domainUseCase usecase.DomainUseCase, logger *slog.Logger) *DomainHandler {
	return &DomainHandler{
		domainUseCase: domainUseCase,
		logger:        logger,
	}
}

// ListHandler returns the domains the caller administers, mapped from name to
// flags.
// GET /v1/domains
func (h *DomainHandler) ListHandler(c *gin.Context) {
	identity, ok := authHTTP.GetIdentity(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	domains, err := h.domainUseCase.List(c.Request.Context(), identity)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapDomainsToListResponse(domains))
}

// GetHandler returns one domain's flags.
// GET /v1/domains/:name
func (h *DomainHandler) GetHandler(c *gin.Context) {
	identity, ok := authHTTP.GetIdentity(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	mailDomain, err := h.domainUseCase.Get(c.Request.Context(), identity, c.Param("name"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapDomainToFlagsResponse(mailDomain))
}

// CreateHandler registers a new domain. Superuser only; the check lives in
// the use case.
// POST /v1/domains
func (h *DomainHandler) CreateHandler(c *gin.Context) {
	identity, ok := authHTTP.GetIdentity(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	var req dto.CreateDomainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	mailDomain, err := h.domainUseCase.Create(c.Request.Context(), identity, req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapDomainToFlagsResponse(mailDomain))
}

// UpdateHandler changes a domain's delivery settings. Owner reassignment is
// superuser only; the check lives in the use case.
// PATCH /v1/domains/:name
func (h *DomainHandler) UpdateHandler(c *gin.Context) {
	identity, ok := authHTTP.GetIdentity(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	var req dto.UpdateDomainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	mailDomain, err := h.domainUseCase.Update(c.Request.Context(), identity, c.Param("name"), req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapDomainToFlagsResponse(mailDomain))
}

// AllowDenyHandler returns the domain's sender allow/deny rules. Read only;
// the rules are maintained by the reporting pipeline.
// GET /v1/domains/:name/allowdeny
func (h *DomainHandler) AllowDenyHandler(c *gin.Context) {
	identity, ok := authHTTP.GetIdentity(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	entries, err := h.domainUseCase.ListAllowDeny(c.Request.Context(), identity, c.Param("name"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapAllowDenyToResponse(entries))
}
