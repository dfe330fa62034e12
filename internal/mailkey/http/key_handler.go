// Package http provides HTTP handlers for domain key administration.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authHTTP "github.com/allisson/mailadmin/internal/auth/http"
	apperrors "github.com/allisson/mailadmin/internal/errors"
	"github.com/allisson/mailadmin/internal/httputil"
	"github.com/allisson/mailadmin/internal/mailkey/http/dto"
	"github.com/allisson/mailadmin/internal/mailkey/usecase"
	customValidation "github.com/allisson/mailadmin/internal/validation"
)

// KeyHandler handles HTTP requests for DKIM key administration.
type KeyHandler struct {
	keyUseCase usecase.KeyUseCase
	logger     *slog.Logger
}

// NewKeyHandler creates a new key handler with required dependencies.
func NewKeyHandler(keyUseCase usecase.KeyUseCase, logger *slog.Logger) *KeyHandler {
	return &KeyHandler{
		keyUseCase: keyUseCase,
		logger:     logger,
	}
}

// ListHandler returns the domain's keys partitioned into active and passive
// sets, each selector mapped to its publishable record.
// GET /v1/domains/:name/keys
func (h *KeyHandler) ListHandler(c *gin.Context) {
	identity, ok := authHTTP.GetIdentity(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	listing, err := h.keyUseCase.List(c.Request.Context(), identity, c.Param("name"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapListingToResponse(listing))
}

// CreateHandler mints a fresh keypair under the requested selector.
// POST /v1/domains/:name/keys
func (h *KeyHandler) CreateHandler(c *gin.Context) {
	identity, ok := authHTTP.GetIdentity(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	var req dto.CreateKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	key, err := h.keyUseCase.Create(c.Request.Context(), identity, c.Param("name"), req.Selector, req.Signing)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapKeyToResponse(key))
}

// SetSigningHandler sets the signing flag on one key. Demoting the last
// signing key is allowed; a domain without signing keys simply stops signing.
// PATCH /v1/domains/:name/keys/:selector
func (h *KeyHandler) SetSigningHandler(c *gin.Context) {
	identity, ok := authHTTP.GetIdentity(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	var req dto.SetSigningRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	signing, err := h.keyUseCase.SetSigning(c.Request.Context(), identity, c.Param("name"), c.Param("selector"), *req.Signing)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.SetSigningResponse{Selector: c.Param("selector"), Signing: signing})
}

// DeleteHandler removes a key.
// DELETE /v1/domains/:name/keys/:selector
func (h *KeyHandler) DeleteHandler(c *gin.Context) {
	identity, ok := authHTTP.GetIdentity(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	wasSigning, err := h.keyUseCase.Delete(c.Request.Context(), identity, c.Param("name"), c.Param("selector"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.DeleteKeyResponse{Deleted: c.Param("selector"), WasSigning: wasSigning})
}
