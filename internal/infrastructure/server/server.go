package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	apihttp "github.com/vfsemu/vfsemu/internal/api/http"
	"github.com/vfsemu/vfsemu/internal/api/middleware"
	"github.com/vfsemu/vfsemu/internal/api/ws"
	"github.com/vfsemu/vfsemu/internal/domain/session"
	"github.com/vfsemu/vfsemu/internal/infrastructure/config"
	"github.com/vfsemu/vfsemu/internal/infrastructure/logging"
	"github.com/vfsemu/vfsemu/internal/infrastructure/monitoring"
	"github.com/vfsemu/vfsemu/internal/shell"
	"github.com/vfsemu/vfsemu/internal/vfs"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	router   *gin.Engine
	http     *http.Server
	sessions *session.Manager
	logger   *logging.Logger
	config   *config.Config
	metrics  *monitoring.Metrics
}

// New assembles the serving layer over one loaded tree.
func New(cfg *config.Config, tree *vfs.Tree, logger *logging.Logger) *Server {
	metrics := monitoring.NewMetrics()
	sessions := session.NewManager(tree).WithMetrics(metrics)

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger))
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	handlers := apihttp.NewHandlers(sessions, cfg.VFS.Path, logger, metrics)
	handlers.Register(router)

	shellInfo := shell.Info{
		VFSPath: cfg.VFS.Path,
		Script:  cfg.VFS.Script,
		Strict:  cfg.VFS.Strict,
		Debug:   cfg.Logging.Development,
	}
	wsHandler := ws.NewHandler(sessions, shellInfo, logger, metrics)
	router.GET("/sessions/:id/shell", wsHandler.HandleShell)

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(
		metrics.Registry(),
		promhttp.HandlerOpts{},
	)))

	return &Server{
		router:   router,
		sessions: sessions,
		logger:   logger,
		config:   cfg,
		metrics:  metrics,
	}
}

// Router exposes the gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine { return s.router }

// Sessions exposes the session manager.
func (s *Server) Sessions() *session.Manager { return s.sessions }

// Run serves until the listener fails or Shutdown is called.
func (s *Server) Run() error {
	addr := net.JoinHostPort(s.config.Server.Host, s.config.Server.Port)
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("serving HTTP API", zap.String("addr", addr))
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// requestLogger logs one line per request at debug level.
func requestLogger(logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}
