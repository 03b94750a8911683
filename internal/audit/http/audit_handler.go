// Package http provides HTTP handlers for audit trail access.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	auditUseCase "github.com/controleapp/inventory/internal/audit/usecase"
	"github.com/controleapp/inventory/internal/httputil"
)

// AuditHandler handles HTTP requests for audit event listing.
type AuditHandler struct {
	recorder auditUseCase.Recorder
	logger   *slog.Logger
}

// NewAuditHandler creates a new audit handler with required dependencies.
func NewAuditHandler(recorder auditUseCase.Recorder, logger *slog.Logger) *AuditHandler {
	return &AuditHandler{
		recorder: recorder,
		logger:   logger,
	}
}

// ListHandler retrieves audit events with pagination support.
// GET /v1/audit-events?offset=0&limit=50
// Returns 200 OK with events ordered by created_at descending (newest first).
func (h *AuditHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	events, err := h.recorder.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": events})
}
