// Package http provides the HTTP server, routing and shared middleware.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authHTTP "github.com/allisson/mailadmin/internal/auth/http"
	authUseCase "github.com/allisson/mailadmin/internal/auth/usecase"
	maildomainHTTP "github.com/allisson/mailadmin/internal/maildomain/http"
	mailentryHTTP "github.com/allisson/mailadmin/internal/mailentry/http"
	mailkeyHTTP "github.com/allisson/mailadmin/internal/mailkey/http"
	"github.com/allisson/mailadmin/internal/metrics"
	userHTTP "github.com/allisson/mailadmin/internal/user/http"
)

// Server represents the HTTP server.
type Server struct {
	server *http.Server
	router *gin.Engine
	db     *sql.DB
	logger *slog.Logger
}

// RouterConfig carries the handlers and middleware settings the router is
// assembled from.
type RouterConfig struct {
	TokenUseCase    authUseCase.TokenUseCase
	AuditLogUseCase authUseCase.AuditLogUseCase

	TokenHandler    *authHTTP.TokenHandler
	AuditLogHandler *authHTTP.AuditLogHandler
	DomainHandler   *maildomainHTTP.DomainHandler
	EntryHandler    *mailentryHTTP.EntryHandler
	KeyHandler      *mailkeyHTTP.KeyHandler
	UserHandler     *userHTTP.UserHandler

	CORSEnabled      bool
	CORSAllowOrigins string

	RateLimitEnabled        bool
	RateLimitRequestsPerSec float64
	RateLimitBurst          int

	MetricsProvider  *metrics.Provider
	MetricsNamespace string
}

// NewServer creates a new HTTP server.
func NewServer(
	db *sql.DB,
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	return &Server{
		db:     db,
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// SetupRouter builds the gin router: global middleware, unauthenticated
// health endpoints, and the authenticated /v1 API group. The metrics endpoint
// is deliberately not registered here; it lives on its own port.
func (s *Server) SetupRouter(cfg RouterConfig) {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if cfg.MetricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(cfg.MetricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")
	v1.Use(authHTTP.AuthenticationMiddleware(cfg.TokenUseCase, s.logger))
	if cfg.RateLimitEnabled {
		v1.Use(authHTTP.RateLimitMiddleware(cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger))
	}
	v1.Use(authHTTP.AuditMiddleware(cfg.AuditLogUseCase, s.logger))

	// Tokens
	v1.GET("/tokens", cfg.TokenHandler.ListHandler)
	v1.POST("/tokens", cfg.TokenHandler.CreateHandler)
	v1.POST("/tokens/revoke", cfg.TokenHandler.RevokeHandler)

	// Audit trail
	v1.GET("/audit-logs", cfg.AuditLogHandler.ListHandler)

	// Users
	v1.GET("/users", cfg.UserHandler.ListHandler)
	v1.POST("/users", cfg.UserHandler.CreateHandler)

	// Domains
	v1.GET("/domains", cfg.DomainHandler.ListHandler)
	v1.POST("/domains", cfg.DomainHandler.CreateHandler)
	v1.GET("/domains/:name", cfg.DomainHandler.GetHandler)
	v1.PATCH("/domains/:name", cfg.DomainHandler.UpdateHandler)
	v1.GET("/domains/:name/allowdeny", cfg.DomainHandler.AllowDenyHandler)

	// Mail entries
	v1.GET("/domains/:name/entries", cfg.EntryHandler.ListHandler)
	v1.GET("/domains/:name/entries/:entry", cfg.EntryHandler.GetHandler)
	v1.PUT("/domains/:name/entries/:entry", cfg.EntryHandler.CreateHandler)
	v1.PATCH("/domains/:name/entries/:entry", cfg.EntryHandler.UpdateHandler)
	v1.DELETE("/domains/:name/entries/:entry", cfg.EntryHandler.DeleteHandler)

	// Domain keys
	v1.GET("/domains/:name/keys", cfg.KeyHandler.ListHandler)
	v1.POST("/domains/:name/keys", cfg.KeyHandler.CreateHandler)
	v1.PATCH("/domains/:name/keys/:selector", cfg.KeyHandler.SetSigningHandler)
	v1.DELETE("/domains/:name/keys/:selector", cfg.KeyHandler.DeleteHandler)

	s.router = router
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server can do useful work, checking
// each dependency individually.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{}
	ready := true

	if s.db == nil {
		components["database"] = "error"
		ready = false
	} else {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := s.db.PingContext(ctx); err != nil {
			components["database"] = "error"
			ready = false
		} else {
			components["database"] = "ok"
		}
	}

	if !ready {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "components": components})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready", "components": components})
}

// Start starts the HTTP server.
func (s *Server) Start(ctx context.Context) error {
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
