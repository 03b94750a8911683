package http

import (
	"log/slog"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	otelmetric "go.opentelemetry.io/otel/metric"

	auditHTTP "github.com/controleapp/inventory/internal/audit/http"
	auditUseCase "github.com/controleapp/inventory/internal/audit/usecase"
	authDomain "github.com/controleapp/inventory/internal/auth/domain"
	authHTTP "github.com/controleapp/inventory/internal/auth/http"
	authUseCase "github.com/controleapp/inventory/internal/auth/usecase"
	"github.com/controleapp/inventory/internal/metrics"
	secretsHTTP "github.com/controleapp/inventory/internal/secrets/http"
)

// RouterConfig carries the handlers and cross-cutting settings needed to
// build the API router.
type RouterConfig struct {
	Logger *slog.Logger

	AuthUseCase   *authUseCase.AuthUseCase
	Recorder      auditUseCase.Recorder
	AuthHandler   *authHTTP.AuthHandler
	SecretHandler *secretsHTTP.SecretHandler
	AuditHandler  *auditHTTP.AuditHandler

	// Login rate limiting; disabled when RateLimitRPS <= 0.
	RateLimitRPS   float64
	RateLimitBurst int

	CORSEnabled      bool
	CORSAllowOrigins string

	// HTTP request metrics; disabled when nil.
	MeterProvider    otelmetric.MeterProvider
	MetricsNamespace string
}

// SetupRouter builds the gin engine with the full API surface. Role gating
// follows the static policy: list is open to every role, create and rotate
// to admin and editor, reveal and delete to admin, audit reads to admin and
// editor.
func (s *Server) SetupRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(cfg.Logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, cfg.Logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if cfg.MeterProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(cfg.MeterProvider, cfg.MetricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	requireAuth := authHTTP.AuthenticationMiddleware(cfg.AuthUseCase, cfg.Logger)
	requireOp := func(op authDomain.Operation) gin.HandlerFunc {
		return authHTTP.AuthorizationMiddleware(op, cfg.Recorder, cfg.Logger)
	}

	v1 := router.Group("/v1")
	{
		login := v1.Group("/auth")
		if cfg.RateLimitRPS > 0 {
			login.POST("/login",
				authHTTP.LoginRateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst, cfg.Logger),
				cfg.AuthHandler.LoginHandler)
		} else {
			login.POST("/login", cfg.AuthHandler.LoginHandler)
		}
		login.GET("/me", requireAuth, cfg.AuthHandler.MeHandler)

		secrets := v1.Group("/secrets", requireAuth)
		{
			secrets.GET("", requireOp(authDomain.OperationList), cfg.SecretHandler.ListHandler)
			secrets.POST("", requireOp(authDomain.OperationCreate), cfg.SecretHandler.CreateHandler)
			secrets.GET("/:id/reveal", requireOp(authDomain.OperationReveal), cfg.SecretHandler.RevealHandler)
			secrets.PUT("/:id", requireOp(authDomain.OperationRotate), cfg.SecretHandler.RotateHandler)
			secrets.DELETE("/:id", requireOp(authDomain.OperationDelete), cfg.SecretHandler.DeleteHandler)
		}

		v1.GET("/audit-events", requireAuth,
			requireOp(authDomain.OperationAuditRead),
			cfg.AuditHandler.ListHandler)
	}

	s.SetHandler(router)
	return router
}
