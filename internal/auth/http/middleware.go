package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	auditDomain "github.com/controleapp/inventory/internal/audit/domain"
	auditUseCase "github.com/controleapp/inventory/internal/audit/usecase"
	authDomain "github.com/controleapp/inventory/internal/auth/domain"
	authUseCase "github.com/controleapp/inventory/internal/auth/usecase"
	apperrors "github.com/controleapp/inventory/internal/errors"
	"github.com/controleapp/inventory/internal/httputil"
)

// AuthenticationMiddleware authenticates requests via Bearer token in the
// Authorization header ("bearer" is matched case-insensitively) and stores
// the resolved user in the request context for downstream handlers.
//
// Missing, malformed or unverifiable tokens yield 401.
func AuthenticationMiddleware(authUC *authUseCase.AuthUseCase, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Debug("authentication failed: missing authorization header")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		const bearerPrefix = "bearer "
		if len(authHeader) < len(bearerPrefix) ||
			!strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			logger.Debug("authentication failed: malformed authorization header")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		token := strings.TrimSpace(authHeader[len(bearerPrefix):])
		if token == "" {
			logger.Debug("authentication failed: empty bearer token")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		user, err := authUC.Authenticate(c.Request.Context(), token)
		if err != nil {
			logger.Debug("authentication failed", slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		ctx := WithUser(c.Request.Context(), user)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// AuthorizationMiddleware enforces the role policy for one operation.
//
// Must run after AuthenticationMiddleware. A denial is recorded in the audit
// trail before the 403 is written, so the trail always contains the denial
// regardless of what the client does with the response.
func AuthorizationMiddleware(
	op authDomain.Operation,
	recorder auditUseCase.Recorder,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := GetUser(c.Request.Context())
		if !ok || user == nil {
			logger.Debug("authorization failed: no authenticated user in context")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		if !authDomain.Allowed(user.Role, op) {
			recorder.Record(auditDomain.Event{
				ActorID:    user.ID,
				ActorEmail: user.Email,
				Action:     auditDomain.ActionAccessDenied,
				Resource:   c.Request.URL.Path,
				Context: map[string]any{
					"operation": string(op),
					"role":      string(user.Role),
				},
			})

			logger.Debug("authorization failed: insufficient role",
				slog.String("user_id", user.ID),
				slog.String("role", string(user.Role)),
				slog.String("operation", string(op)))
			httputil.HandleErrorGin(c, apperrors.ErrForbidden, logger)
			c.Abort()
			return
		}

		c.Next()
	}
}
