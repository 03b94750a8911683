package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/controleapp/inventory/internal/auth/http/dto"
	authUseCase "github.com/controleapp/inventory/internal/auth/usecase"
	apperrors "github.com/controleapp/inventory/internal/errors"
	"github.com/controleapp/inventory/internal/httputil"
)

// AuthHandler handles HTTP requests for login and identity introspection.
type AuthHandler struct {
	authUC *authUseCase.AuthUseCase
	logger *slog.Logger
}

// NewAuthHandler creates a new auth handler with required dependencies.
func NewAuthHandler(authUC *authUseCase.AuthUseCase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
		logger: logger,
	}
}

// LoginHandler exchanges credentials for an access token.
// POST /v1/auth/login
// Returns 200 OK with the token, its lifetime in seconds and the user view.
// Invalid credentials yield 401 without revealing whether the email exists.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var request dto.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := request.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	output, err := h.authUC.Login(c.Request.Context(), request.Email, request.Password)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapLoginOutputToResponse(output))
}

// MeHandler returns the authenticated user's own view.
// GET /v1/auth/me
// Requires a valid bearer token; the response mirrors the user embedded in
// the login response.
func (h *AuthHandler) MeHandler(c *gin.Context) {
	user, ok := GetUser(c.Request.Context())
	if !ok || user == nil {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": dto.MapUserToResponse(user)})
}
