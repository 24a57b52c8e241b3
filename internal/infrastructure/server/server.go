package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	_ "github.com/projectboard/core/docs"
	httpHandlers "github.com/projectboard/core/internal/adapters/http"
	"github.com/projectboard/core/internal/adapters/repository"
	"github.com/projectboard/core/internal/application/services"
	"github.com/projectboard/core/internal/domain/entities"
	"github.com/projectboard/core/internal/infrastructure/config"
	"github.com/projectboard/core/internal/infrastructure/database"
	"github.com/projectboard/core/internal/infrastructure/logger"
)

// Server represents the HTTP server
type Server struct {
	echo   *echo.Echo
	config *config.Config
	logger *logger.Logger
	db     *database.DB
}

// CustomValidator wraps the validator
type CustomValidator struct {
	validator *validator.Validate
}

// Validate validates structs
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// New creates a new server instance
func New(cfg *config.Config, db *database.DB, appLogger *logger.Logger) (*Server, error) {
	e := echo.New()

	// Set custom validator
	e.Validator = &CustomValidator{validator: validator.New()}

	// Configure Echo
	e.HideBanner = true
	e.HidePort = true

	// Custom error handler
	e.HTTPErrorHandler = customErrorHandler(appLogger)

	// Initialize repositories
	workspaceRepo := repository.NewWorkspaceRepository(db.DB)
	columnRepo := repository.NewColumnRepository(db.DB)
	taskRepo := repository.NewProjectTaskRepository(db.DB)
	tagRepo := repository.NewTagRepository(db.DB)
	assigneeRepo := repository.NewAssigneeRepository(db.DB)
	userRepo := repository.NewUserRepository(db.DB)
	tokenRepo := repository.NewTokenRepository(db.DB)
	transactor := repository.NewTransactor(db)

	// Initialize services
	onboardingService := services.NewOnboardingService(transactor, appLogger)
	authService := services.NewAuthService(userRepo, tokenRepo, onboardingService, cfg.JWT, appLogger)
	workspaceService := services.NewWorkspaceService(workspaceRepo, appLogger)
	columnService := services.NewColumnService(columnRepo, workspaceRepo, appLogger)
	taskService := services.NewProjectTaskService(taskRepo, workspaceRepo, columnRepo, assigneeRepo, tagRepo, appLogger)
	tagService := services.NewTagService(tagRepo, appLogger)
	assigneeService := services.NewAssigneeService(assigneeRepo, appLogger)

	// Initialize handlers
	authHandler := httpHandlers.NewAuthHandler(authService, appLogger)
	workspaceHandler := httpHandlers.NewWorkspaceHandler(workspaceService, appLogger)
	columnHandler := httpHandlers.NewColumnHandler(columnService, appLogger)
	taskHandler := httpHandlers.NewTaskHandler(taskService, appLogger)
	tagHandler := httpHandlers.NewTagHandler(tagService, appLogger)
	assigneeHandler := httpHandlers.NewAssigneeHandler(assigneeService, appLogger)

	server := &Server{
		echo:   e,
		config: cfg,
		logger: appLogger,
		db:     db,
	}

	// Setup middleware
	server.setupMiddleware()

	// Setup routes
	server.setupRoutes(authHandler, workspaceHandler, columnHandler, taskHandler, tagHandler, assigneeHandler, authService)

	// Setup metrics
	if cfg.Metrics.Enabled {
		server.setupMetrics()
	}

	return server, nil
}

// setupMiddleware configures middleware
func (s *Server) setupMiddleware() {
	// Recovery middleware
	s.echo.Use(middleware.Recover())

	// Logger middleware
	s.echo.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogError:     true,
		LogRemoteIP:  true,
		LogUserAgent: true,
		LogValuesFunc: func(c echo.Context, values middleware.RequestLoggerValues) error {
			fields := []interface{}{
				"method", values.Method,
				"uri", values.URI,
				"status", values.Status,
				"latency_ms", float64(values.Latency.Nanoseconds()) / 1000000,
				"remote_ip", values.RemoteIP,
				"user_agent", values.UserAgent,
			}

			if values.Error != nil {
				fields = append(fields, "error", values.Error.Error())
				s.logger.Errorw("HTTP request failed", fields...)
			} else {
				s.logger.Infow("HTTP request", fields...)
			}

			return nil
		},
	}))

	// CORS middleware
	s.echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: strings.Split(s.config.Security.CORSAllowedOrigins, ","),
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowMethods: []string{echo.GET, echo.HEAD, echo.PUT, echo.PATCH, echo.POST, echo.DELETE},
	}))

	// Rate limiting middleware
	s.echo.Use(middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{Rate: rate.Limit(s.config.Security.RateLimitRequests), Burst: s.config.Security.RateLimitRequests, ExpiresIn: s.config.Security.RateLimitWindow},
		),
		IdentifierExtractor: func(ctx echo.Context) (string, error) {
			return ctx.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusForbidden, map[string]string{"message": "rate limit exceeded"})
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.JSON(http.StatusTooManyRequests, map[string]string{"message": "rate limit exceeded"})
		},
	}))

	// Security headers
	s.echo.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		HSTSMaxAge:            31536000,
		ContentSecurityPolicy: "default-src 'self'",
	}))

	// Request ID middleware
	s.echo.Use(middleware.RequestID())

	// Timeout middleware
	s.echo.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: 30 * time.Second,
	}))
}

// setupRoutes configures all routes
func (s *Server) setupRoutes(
	authHandler *httpHandlers.AuthHandler,
	workspaceHandler *httpHandlers.WorkspaceHandler,
	columnHandler *httpHandlers.ColumnHandler,
	taskHandler *httpHandlers.TaskHandler,
	tagHandler *httpHandlers.TagHandler,
	assigneeHandler *httpHandlers.AssigneeHandler,
	authService *services.AuthService,
) {
	// Health check routes
	s.echo.GET("/health", s.healthCheck)
	s.echo.GET("/health/detailed", s.detailedHealthCheck)
	s.echo.GET("/ready", s.readinessCheck)

	// Swagger documentation
	s.echo.GET("/swagger/*", echoSwagger.WrapHandler)

	// API v1 routes
	v1 := s.echo.Group("/api/v1")

	// Auth routes (public)
	authGroup := v1.Group("/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.POST("/refresh", authHandler.Refresh)

	// Workspace routes (authenticated)
	workspaceGroup := v1.Group("/workspaces", s.authMiddleware(authService))
	workspaceGroup.GET("", workspaceHandler.List)
	workspaceGroup.POST("", workspaceHandler.Create)
	workspaceGroup.GET("/:id", workspaceHandler.Get)
	workspaceGroup.PUT("/:id", workspaceHandler.Update)
	workspaceGroup.DELETE("/:id", workspaceHandler.Delete)

	// Nested column and task collections
	workspaceGroup.GET("/:workspaceId/columns", columnHandler.List)
	workspaceGroup.POST("/:workspaceId/columns", columnHandler.Create)
	workspaceGroup.GET("/:workspaceId/tasks", taskHandler.List)
	workspaceGroup.POST("/:workspaceId/columns/:columnId/tasks", taskHandler.Create)

	// Column routes (authenticated)
	columnGroup := v1.Group("/columns", s.authMiddleware(authService))
	columnGroup.GET("/:id", columnHandler.Get)
	columnGroup.PUT("/:id", columnHandler.Update)
	columnGroup.DELETE("/:id", columnHandler.Delete)

	// Task routes (authenticated)
	taskGroup := v1.Group("/tasks", s.authMiddleware(authService))
	taskGroup.GET("/:id", taskHandler.Get)
	taskGroup.PUT("/:id", taskHandler.Update)
	taskGroup.DELETE("/:id", taskHandler.Delete)
	taskGroup.POST("/:id/assignees/:assigneeId", taskHandler.AddAssignee)
	taskGroup.DELETE("/:id/assignees/:assigneeId", taskHandler.RemoveAssignee)
	taskGroup.POST("/:id/tags/:tagId", taskHandler.AddTag)
	taskGroup.DELETE("/:id/tags/:tagId", taskHandler.RemoveTag)

	// Tag routes (authenticated)
	tagGroup := v1.Group("/tags", s.authMiddleware(authService))
	tagGroup.GET("", tagHandler.List)
	tagGroup.POST("", tagHandler.Create)
	tagGroup.GET("/:id", tagHandler.Get)
	tagGroup.PUT("/:id", tagHandler.Update)
	tagGroup.DELETE("/:id", tagHandler.Delete)

	// Assignee routes (authenticated)
	assigneeGroup := v1.Group("/assignees", s.authMiddleware(authService))
	assigneeGroup.GET("", assigneeHandler.List)
	assigneeGroup.POST("", assigneeHandler.Create)
	assigneeGroup.GET("/:id", assigneeHandler.Get)
	assigneeGroup.PUT("/:id", assigneeHandler.Update)
	assigneeGroup.DELETE("/:id", assigneeHandler.Delete)
}

// setupMetrics configures Prometheus metrics
func (s *Server) setupMetrics() {
	registry := prometheus.NewRegistry()

	requestsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	registry.MustRegister(requestsTotal, requestDuration)

	// Custom metrics middleware
	s.echo.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			duration := time.Since(start)
			status := c.Response().Status

			requestsTotal.WithLabelValues(
				c.Request().Method,
				c.Path(),
				fmt.Sprintf("%d", status),
			).Inc()

			requestDuration.WithLabelValues(
				c.Request().Method,
				c.Path(),
			).Observe(duration.Seconds())

			return err
		}
	})

	// Metrics endpoint
	metricsHandler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	s.echo.GET("/metrics", echo.WrapHandler(metricsHandler))
}

// Health check handlers
func (s *Server) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) detailedHealthCheck(c echo.Context) error {
	status := "ok"
	checks := make(map[string]interface{})

	// Database health check
	if err := s.db.HealthCheck(); err != nil {
		status = "error"
		checks["database"] = map[string]interface{}{
			"status": "error",
			"error":  err.Error(),
		}
	} else {
		checks["database"] = map[string]interface{}{
			"status": "ok",
			"stats":  s.db.GetConnectionInfo(),
		}
	}

	response := map[string]interface{}{
		"status": status,
		"time":   time.Now().UTC().Format(time.RFC3339),
		"checks": checks,
		"version": map[string]string{
			"app": s.config.App.Version,
		},
	}

	if status == "ok" {
		return c.JSON(http.StatusOK, response)
	}
	return c.JSON(http.StatusServiceUnavailable, response)
}

func (s *Server) readinessCheck(c echo.Context) error {
	if err := s.db.Ping(); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "not_ready",
			"reason": "database_not_ready",
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "ready",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// Start starts the HTTP server
func (s *Server) Start(address string) error {
	s.logger.Infow("Starting server", "address", address)
	return s.echo.Start(address)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Infow("Shutting down server")
	return s.echo.Shutdown(ctx)
}

// customErrorHandler translates domain errors into HTTP status codes: absence
// maps to 404, denied ownership to 403 and invalid input to 400. Anything
// unrecognized is a 500 and gets logged.
func customErrorHandler(logger *logger.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		var (
			code = http.StatusInternalServerError
			msg  interface{}
		)

		var (
			httpErr       *echo.HTTPError
			notFoundErr   *entities.NotFoundError
			forbiddenErr  *entities.ForbiddenError
			validationErr *entities.ValidationError
			fieldErrs     validator.ValidationErrors
		)

		switch {
		case errors.As(err, &httpErr):
			code = httpErr.Code
			msg = httpErr.Message
			if httpErr.Internal != nil {
				err = fmt.Errorf("%v, %v", err, httpErr.Internal)
			}
		case errors.As(err, &notFoundErr):
			code = http.StatusNotFound
			msg = map[string]string{"message": notFoundErr.Error()}
		case errors.As(err, &forbiddenErr):
			code = http.StatusForbidden
			msg = map[string]string{"message": forbiddenErr.Error()}
		case errors.As(err, &validationErr):
			code = http.StatusBadRequest
			msg = map[string]string{"message": validationErr.Error()}
		case errors.As(err, &fieldErrs):
			code = http.StatusBadRequest
			msg = map[string]string{"message": "validation failed", "details": fieldErrs.Error()}
		default:
			msg = map[string]string{"message": http.StatusText(code)}
		}

		if code == http.StatusInternalServerError {
			logger.Errorw("Internal server error", "error", err, "path", c.Request().URL.Path)
		}

		// Send response
		if !c.Response().Committed {
			if c.Request().Method == echo.HEAD {
				err = c.NoContent(code)
			} else {
				err = c.JSON(code, msg)
			}
			if err != nil {
				logger.Errorw("Error sending response", "error", err)
			}
		}
	}
}
