// Package server sets up the HTTP server with all routes
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/upiguard/upiguard/internal/config"
	"github.com/upiguard/upiguard/internal/fraud"
	"github.com/upiguard/upiguard/internal/health"
	"github.com/upiguard/upiguard/internal/logging"
	"github.com/upiguard/upiguard/internal/metrics"
	"github.com/upiguard/upiguard/internal/ratelimit"
	"github.com/upiguard/upiguard/internal/realtime"
	"github.com/upiguard/upiguard/internal/security"
	"github.com/upiguard/upiguard/internal/traces"
	"github.com/upiguard/upiguard/internal/validation"
)

// -----------------------------------------------------------------------------
// Server
// -----------------------------------------------------------------------------

// Server wraps the HTTP server and dependencies
type Server struct {
	cfg            *config.Config
	svc            *fraud.Service
	store          *fraud.MemoryStore
	hub            *realtime.Hub
	rateLimiter    *ratelimit.Limiter
	checks         *health.Registry
	router         *gin.Engine
	httpSrv        *http.Server
	logger         *slog.Logger
	clock          func() time.Time
	tracesShutdown func(context.Context) error
	cancelRunCtx   context.CancelFunc // cancels background goroutines started in Run

	// Health state
	ready   atomic.Bool
	healthy atomic.Bool
}

// Option configures the server
type Option func(*Server)

// WithLogger sets a custom logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithClock injects the scoring clock (for testing)
func WithClock(clock func() time.Time) Option {
	return func(s *Server) {
		s.clock = clock
	}
}

// New creates a new server instance
func New(cfg *config.Config, opts ...Option) (*Server, error) {
	s := &Server{
		cfg:    cfg,
		logger: logging.New(cfg.LogLevel, cfg.LogFormat),
	}

	// Apply options first (may set logger/clock)
	for _, opt := range opts {
		opt(s)
	}

	// Tracing (no-op when no endpoint configured)
	shutdown, err := traces.Init(context.Background(), cfg.OTLPEndpoint, s.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init tracing: %w", err)
	}
	s.tracesShutdown = shutdown

	// The session ledger lives in memory only; it is created empty and
	// discarded when the process exits.
	s.store = fraud.NewMemoryStore()
	ledger := fraud.NewLedger(s.store)
	s.logger.Info("session ledger created (in-memory, no persistence)")

	// Realtime hub for the dashboard's live feed
	s.hub = realtime.NewHub(s.logger)

	svcOpts := []fraud.Option{
		fraud.WithAnalysisDelay(cfg.AnalysisDelay),
		fraud.WithEvents(&hubEmitter{s.hub}),
		fraud.WithLogger(s.logger),
	}
	if s.clock != nil {
		svcOpts = append(svcOpts, fraud.WithClock(s.clock))
	}
	s.svc = fraud.NewService(ledger, svcOpts...)

	if cfg.AnalysisDelay > 0 {
		s.logger.Info("simulated analysis delay enabled", "delay", cfg.AnalysisDelay)
	}

	// Health checks
	s.checks = health.NewRegistry()
	s.checks.Register("ledger", func(ctx context.Context) health.Status {
		return health.Status{
			Name:    "ledger",
			Healthy: true,
			Detail:  fmt.Sprintf("%d transactions", s.store.Len()),
		}
	})
	s.checks.Register("realtime", func(ctx context.Context) health.Status {
		clients, _ := s.hub.Stats()["connectedClients"].(int)
		return health.Status{
			Name:    "realtime",
			Healthy: true,
			Detail:  fmt.Sprintf("%d clients", clients),
		}
	})

	// Configure gin
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	s.router = gin.New()
	s.setupMiddleware()
	s.setupRoutes()

	s.healthy.Store(true)

	return s, nil
}

// hubEmitter adapts the realtime hub to the fraud.EventEmitter interface
type hubEmitter struct {
	hub *realtime.Hub
}

func (e *hubEmitter) TransactionScored(tx *fraud.Transaction) {
	e.hub.BroadcastTransaction(transactionEventData(tx))
}

func (e *hubEmitter) FraudDetected(tx *fraud.Transaction) {
	e.hub.BroadcastFraudAlert(transactionEventData(tx))
}

func transactionEventData(tx *fraud.Transaction) map[string]interface{} {
	return map[string]interface{}{
		"id":         tx.ID,
		"amount":     tx.Amount,
		"merchant":   tx.Merchant,
		"category":   string(tx.Category),
		"deviceType": string(tx.DeviceType),
		"location":   tx.Location,
		"timestamp":  tx.Timestamp,
		"riskScore":  tx.RiskScore,
		"signals":    tx.Signals,
		"status":     string(tx.Status),
	}
}

// -----------------------------------------------------------------------------
// Middleware
// -----------------------------------------------------------------------------

func (s *Server) setupMiddleware() {
	// Recovery with logging
	s.router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logging.L(c.Request.Context()).Error("panic recovered",
			"error", recovered,
			"path", c.Request.URL.Path,
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "An unexpected error occurred",
		})
	}))

	// Security headers
	s.router.Use(security.HeadersMiddleware())

	// CORS
	s.router.Use(security.CORSMiddleware(s.cfg.AllowedOrigins))

	// Request size limit
	s.router.Use(validation.RequestSizeMiddleware(validation.MaxRequestSize))

	// Rate limiting
	limiterCfg := ratelimit.DefaultConfig()
	limiterCfg.RequestsPerMinute = s.cfg.RateLimitRPM
	s.rateLimiter = ratelimit.New(limiterCfg)
	s.router.Use(s.rateLimiter.Middleware())

	// Prometheus metrics
	s.router.Use(metrics.Middleware())

	// Request ID
	s.router.Use(s.requestIDMiddleware())

	// Logging
	s.router.Use(s.loggingMiddleware())
}

func (s *Server) requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Check for existing request ID (from load balancer, etc.)
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx := logging.WithRequestID(c.Request.Context(), requestID)
		ctx = logging.WithLogger(ctx, s.logger)
		c.Request = c.Request.WithContext(ctx)

		c.Header("X-Request-ID", requestID)

		c.Next()
	}
}

func (s *Server) loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		logger := logging.L(c.Request.Context())

		// Log level based on status code
		switch {
		case status >= 500:
			logger.Error("request completed",
				"method", c.Request.Method,
				"path", path,
				"status", status,
				"latency_ms", latency.Milliseconds(),
				"client_ip", c.ClientIP(),
			)
		case status >= 400:
			logger.Warn("request completed",
				"method", c.Request.Method,
				"path", path,
				"status", status,
				"latency_ms", latency.Milliseconds(),
			)
		default:
			logger.Info("request completed",
				"method", c.Request.Method,
				"path", path,
				"status", status,
				"latency_ms", latency.Milliseconds(),
			)
		}
	}
}

// -----------------------------------------------------------------------------
// Routes
// -----------------------------------------------------------------------------

func (s *Server) setupRoutes() {
	// Health & metrics endpoints
	s.router.GET("/health", s.healthHandler)
	s.router.GET("/health/live", s.livenessHandler)
	s.router.GET("/health/ready", s.readinessHandler)
	s.router.GET("/metrics", metrics.Handler())

	// Dashboard (the browser demo)
	s.router.GET("/", dashboardHandler)

	// WebSocket for the live feed
	s.router.GET("/ws", func(c *gin.Context) {
		s.hub.HandleWebSocket(c.Writer, c.Request)
	})

	// API info
	s.router.GET("/api", s.infoHandler)

	// V1 API group
	v1 := s.router.Group("/v1")
	fraudHandler := fraud.NewHandler(s.svc, s.logger)
	fraudHandler.RegisterRoutes(v1)

	// Realtime hub stats (useful when demoing the live feed)
	v1.GET("/realtime/stats", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.hub.Stats())
	})
}

// -----------------------------------------------------------------------------
// Handlers
// -----------------------------------------------------------------------------

func (s *Server) healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	report := s.checks.Check(ctx)

	status := "healthy"
	httpStatus := http.StatusOK
	if !report.Healthy {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, gin.H{
		"status":    status,
		"version":   "0.1.0",
		"checks":    report.Subsystems,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) livenessHandler(c *gin.Context) {
	if !s.healthy.Load() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}

func (s *Server) readinessHandler(c *gin.Context) {
	if !s.ready.Load() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

func (s *Server) infoHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":        "UPIGuard",
		"description": "UPI transaction fraud detection demo",
		"version":     "0.1.0",
		"endpoints": gin.H{
			"submit":  "POST /v1/transactions",
			"history": "GET /v1/transactions",
			"stats":   "GET /v1/stats",
			"stream":  "GET /ws",
		},
	})
}

// -----------------------------------------------------------------------------
// Lifecycle
// -----------------------------------------------------------------------------

// Run starts the server and blocks until shutdown
func (s *Server) Run(ctx context.Context) error {
	// Create a cancellable context for background goroutines so Shutdown() can stop them.
	runCtx, cancel := context.WithCancel(ctx)
	s.cancelRunCtx = cancel

	s.httpSrv = &http.Server{
		Addr:              ":" + s.cfg.Port,
		Handler:           s.router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Channel to catch server errors
	errChan := make(chan error, 1)

	// Start server in goroutine
	go func() {
		s.logger.Info("starting server", "port", s.cfg.Port, "env", s.cfg.Env)
		if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	// Start realtime hub
	go s.hub.Run(runCtx)

	// Mark as ready after brief delay for startup
	go func() {
		time.Sleep(100 * time.Millisecond)
		s.ready.Store(true)
		s.logger.Info("server ready")
	}()

	// Wait for shutdown signal or error
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	case sig := <-sigChan:
		s.logger.Info("shutdown signal received", "signal", sig.String())
	case <-ctx.Done():
		s.logger.Info("context cancelled")
	}

	return s.Shutdown()
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown() error {
	s.logger.Info("shutting down server")
	s.ready.Store(false)

	if s.cancelRunCtx != nil {
		s.cancelRunCtx()
	}

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.httpSrv != nil {
		if err := s.httpSrv.Shutdown(ctx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
	}

	if s.tracesShutdown != nil {
		if err := s.tracesShutdown(ctx); err != nil {
			s.logger.Warn("trace exporter shutdown failed", "error", err)
		}
	}

	s.logger.Info("server stopped")
	return nil
}

// Router exposes the gin engine (for tests)
func (s *Server) Router() http.Handler {
	return s.router
}
