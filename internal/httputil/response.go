// Package httputil provides HTTP utility functions for request and response handling.
package httputil

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/controleapp/inventory/internal/errors"
)

// ErrorBody carries the machine-readable code and human-readable message of
// an API error.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the envelope for all error responses:
// {"error": {"code": "...", "message": "..."}}.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// NewErrorResponse builds an ErrorResponse with the given code and message.
func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{Error: ErrorBody{Code: code, Message: message}}
}

// HandleErrorGin maps domain errors to HTTP status codes and returns a JSON response.
// Secret plaintext never appears in error payloads; unexpected errors (including
// ciphertext integrity failures) are reported without detail.
func HandleErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if err == nil {
		return
	}

	var statusCode int
	var response ErrorResponse

	switch {
	case apperrors.Is(err, apperrors.ErrInvalidInput):
		statusCode = http.StatusBadRequest
		response = NewErrorResponse("VALIDATION_ERROR", err.Error())

	case apperrors.Is(err, apperrors.ErrUnauthorized):
		statusCode = http.StatusUnauthorized
		response = NewErrorResponse("UNAUTHORIZED", "Authentication is required")

	case apperrors.Is(err, apperrors.ErrForbidden):
		statusCode = http.StatusForbidden
		response = NewErrorResponse("FORBIDDEN", "You don't have permission to access this resource")

	case apperrors.Is(err, apperrors.ErrNotFound):
		statusCode = http.StatusNotFound
		response = NewErrorResponse("NOT_FOUND", "The requested resource was not found")

	default:
		// Covers ErrIntegrity as well: a tampered or corrupted ciphertext is an
		// internal failure from the client's perspective and leaks no detail.
		statusCode = http.StatusInternalServerError
		response = NewErrorResponse("INTERNAL_ERROR", "An internal error occurred")
	}

	// Log the full error details (including wrapped errors)
	if logger != nil {
		logger.Error("request failed",
			slog.Int("status_code", statusCode),
			slog.String("error_code", response.Error.Code),
			slog.Any("error", err),
		)
	}

	c.JSON(statusCode, response)
}

// HandleBadRequestGin writes a 400 Bad Request response for malformed JSON or parameters.
func HandleBadRequestGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("bad request", slog.Any("error", err))
	}

	c.JSON(http.StatusBadRequest, NewErrorResponse("VALIDATION_ERROR", err.Error()))
}
