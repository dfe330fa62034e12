// Package http provides HTTP handlers for mail entry administration.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authHTTP "github.com/allisson/mailadmin/internal/auth/http"
	apperrors "github.com/allisson/mailadmin/internal/errors"
	"github.com/allisson/mailadmin/internal/httputil"
	"github.com/allisson/mailadmin/internal/mailentry/http/dto"
	"github.com/allisson/mailadmin/internal/mailentry/usecase"
	customValidation "github.com/allisson/mailadmin/internal/validation"
)

// EntryHandler handles HTTP requests for the mail entries of a domain.
type EntryHandler struct {
	entryUseCase usecase.EntryUseCase
	logger       *slog.Logger
}

// NewEntryHandler creates a new entry handler with required dependencies.
func NewEntryHandler(entryUseCase usecase.EntryUseCase, logger *slog.Logger) *EntryHandler {
	return &EntryHandler{
		entryUseCase: entryUseCase,
		logger:       logger,
	}
}

// ListHandler returns every entry of the domain, mapped from name to kind and
// payload.
// GET /v1/domains/:name/entries
func (h *EntryHandler) ListHandler(c *gin.Context) {
	identity, ok := authHTTP.GetIdentity(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	entries, err := h.entryUseCase.List(c.Request.Context(), identity, c.Param("name"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapEntriesToListResponse(entries))
}

// GetHandler returns one entry.
// GET /v1/domains/:name/entries/:entry
func (h *EntryHandler) GetHandler(c *gin.Context) {
	identity, ok := authHTTP.GetIdentity(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	entry, err := h.entryUseCase.Get(c.Request.Context(), identity, c.Param("name"), c.Param("entry"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapEntryToResponse(entry))
}

// CreateHandler adds an entry to the domain. The route is a PUT on the entry
// name, so the name in the body must match the one in the path.
// PUT /v1/domains/:name/entries/:entry
func (h *EntryHandler) CreateHandler(c *gin.Context) {
	identity, ok := authHTTP.GetIdentity(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if req.Name == "" {
		req.Name = c.Param("entry")
	}
	if req.Name != c.Param("entry") {
		httputil.HandleBadRequestGin(c, fmt.Errorf("entry name %q does not match path %q", req.Name, c.Param("entry")), h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	entry, err := h.entryUseCase.Create(c.Request.Context(), identity, c.Param("name"), req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapEntryToResponse(entry))
}

// UpdateHandler applies a single edit to an entry. Which edits are accepted
// depends on the entry's kind; the check lives in the use case.
// PATCH /v1/domains/:name/entries/:entry
func (h *EntryHandler) UpdateHandler(c *gin.Context) {
	identity, ok := authHTTP.GetIdentity(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	var req dto.UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	entry, err := h.entryUseCase.Update(c.Request.Context(), identity, c.Param("name"), c.Param("entry"), req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapEntryToResponse(entry))
}

// DeleteHandler removes an entry from the domain.
// DELETE /v1/domains/:name/entries/:entry
func (h *EntryHandler) DeleteHandler(c *gin.Context) {
	identity, ok := authHTTP.GetIdentity(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	entryName := c.Param("entry")
	domainName := c.Param("name")
	if err := h.entryUseCase.Delete(c.Request.Context(), identity, domainName, entryName); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.DeleteEntryResponse{Deleted: fmt.Sprintf("%s@%s", entryName, domainName)})
}
