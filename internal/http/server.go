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

	accesshttp "github.com/allisson/gatekeeper/internal/access/http"
	registryhttp "github.com/allisson/gatekeeper/internal/registry/http"
)

// Server represents the HTTP server for the gatekeeper API.
type Server struct {
	server *http.Server
	router *gin.Engine
	db     *sql.DB
	logger *slog.Logger
}

// NewServer creates a new HTTP server. Routes are registered separately with
// SetupRouter so tests can exercise individual handlers.
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

// RouterConfig holds the handlers and options used to build the API router.
type RouterConfig struct {
	GroupHandler       *registryhttp.GroupHandler
	RoleHandler        *registryhttp.RoleHandler
	ApplicationHandler *registryhttp.ApplicationHandler
	AccessHandler      *accesshttp.AccessHandler

	// AdminTokens is the comma-separated "actor:token" list protecting the
	// administration endpoints.
	AdminTokens string

	RateLimitAccessEnabled        bool
	RateLimitAccessRequestsPerSec float64
	RateLimitAccessBurst          int

	CORSEnabled      bool
	CORSAllowOrigins string

	// MetricsMiddleware records request metrics when non-nil.
	MetricsMiddleware gin.HandlerFunc
}

// SetupRouter builds the gin router and registers all routes.
func (s *Server) SetupRouter(cfg RouterConfig) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if cfg.MetricsMiddleware != nil {
		router.Use(cfg.MetricsMiddleware)
	}

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	// Administration endpoints require a bearer token from the configured
	// "actor:token" pairs.
	admin := router.Group("/v1")
	admin.Use(AdminAuthMiddleware(cfg.AdminTokens, s.logger))
	{
		admin.POST("/groups", cfg.GroupHandler.CreateHandler)
		admin.POST("/groups/:id/roles", cfg.GroupHandler.AssignRolesHandler)
		admin.DELETE("/groups/:id", cfg.GroupHandler.DeleteHandler)

		admin.POST("/roles", cfg.RoleHandler.CreateHandler)
		admin.DELETE("/roles/:id", cfg.RoleHandler.DeleteHandler)

		admin.POST("/applications", cfg.ApplicationHandler.CreateHandler)
		admin.GET("/applications/pending", cfg.ApplicationHandler.ListPendingHandler)
		admin.PUT("/applications/:id/approve", cfg.ApplicationHandler.ApproveHandler)
		admin.PUT("/applications/:id/reject", cfg.ApplicationHandler.RejectHandler)
		admin.PUT("/applications/:id/group", cfg.ApplicationHandler.AssignGroupHandler)
		admin.DELETE("/applications/:id", cfg.ApplicationHandler.DeleteHandler)
	}

	// Access resolution authenticates by credential pair, so no admin token
	// is required. Rate limited per client IP when enabled.
	access := router.Group("/v1")
	if cfg.RateLimitAccessEnabled {
		access.Use(RateLimitMiddleware(
			cfg.RateLimitAccessRequestsPerSec,
			cfg.RateLimitAccessBurst,
			s.logger,
		))
	}
	access.POST("/access", cfg.AccessHandler.ResolveHandler)

	s.router = router
}

// healthHandler responds with a simple liveness status.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server can reach its dependencies.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{}
	ready := true

	if s.db == nil {
		components["database"] = "error"
		ready = false
	} else {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := s.db.PingContext(ctx); err != nil {
			s.logger.Error("readiness check failed", slog.Any("error", err))
			components["database"] = "error"
			ready = false
		} else {
			components["database"] = "ok"
		}
	}

	if !ready {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": components,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": components,
	})
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
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
