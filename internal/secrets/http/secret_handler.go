// Package http provides HTTP handlers for secret record operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	auditDomain "github.com/controleapp/inventory/internal/audit/domain"
	auditUseCase "github.com/controleapp/inventory/internal/audit/usecase"
	authHTTP "github.com/controleapp/inventory/internal/auth/http"
	apperrors "github.com/controleapp/inventory/internal/errors"
	"github.com/controleapp/inventory/internal/httputil"
	secretsDomain "github.com/controleapp/inventory/internal/secrets/domain"
	"github.com/controleapp/inventory/internal/secrets/http/dto"
	secretsUseCase "github.com/controleapp/inventory/internal/secrets/usecase"
)

// SecretHandler handles HTTP requests for secret record operations.
type SecretHandler struct {
	secretUC secretsUseCase.SecretUseCase
	recorder auditUseCase.Recorder
	logger   *slog.Logger
}

// NewSecretHandler creates a new secret handler with required dependencies.
func NewSecretHandler(
	secretUC secretsUseCase.SecretUseCase,
	recorder auditUseCase.Recorder,
	logger *slog.Logger,
) *SecretHandler {
	return &SecretHandler{
		secretUC: secretUC,
		recorder: recorder,
		logger:   logger,
	}
}

// parseID resolves the :id path parameter. Malformed ids behave like unknown
// ids so the URL space does not reveal which ids are well-formed.
func parseID(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, secretsDomain.ErrSecretNotFound
	}
	return id, nil
}

// audit records an event attributed to the authenticated user.
func (h *SecretHandler) audit(c *gin.Context, action auditDomain.Action, resourceID string, context map[string]any) {
	user, ok := authHTTP.GetUser(c.Request.Context())
	if !ok || user == nil {
		return
	}

	h.recorder.Record(auditDomain.Event{
		ActorID:    user.ID,
		ActorEmail: user.Email,
		Action:     action,
		Resource:   c.Request.URL.Path,
		ResourceID: resourceID,
		Context:    context,
	})
}

// ListHandler returns an application's secret records, newest created first.
// GET /v1/secrets?appId=app_billing
// Views carry labels and metadata but never ciphertext or plaintext.
func (h *SecretHandler) ListHandler(c *gin.Context) {
	appID := c.Query("appId")
	if appID == "" {
		httputil.HandleErrorGin(c,
			apperrors.Wrap(apperrors.ErrInvalidInput, "appId query parameter is required"),
			h.logger)
		return
	}

	records, err := h.secretUC.ListByApp(c.Request.Context(), appID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapSecretsToListResponse(records))
}

// CreateHandler creates a new secret record.
// POST /v1/secrets
// Returns 201 Created with the public view; the stored value is encrypted
// before the repository write.
func (h *SecretHandler) CreateHandler(c *gin.Context) {
	var request dto.CreateSecretRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := request.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	record, err := h.secretUC.Create(c.Request.Context(), secretsDomain.CreateSecretInput{
		AppID:     request.AppID,
		Kind:      secretsDomain.Kind(request.Kind),
		Label:     request.Label,
		Plaintext: request.PlainValue,
		Metadata:  request.Metadata,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.audit(c, auditDomain.ActionCreate, record.ID.String(), map[string]any{
		"appId": record.AppID,
		"kind":  string(record.Kind),
		"label": record.Label,
	})

	c.JSON(http.StatusCreated, dto.MapSecretToResponse(record))
}

// RevealHandler decrypts and returns a secret's plaintext value.
// GET /v1/secrets/:id/reveal
// Every successful reveal is recorded as a view_secret audit event.
func (h *SecretHandler) RevealHandler(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	value, err := h.secretUC.Reveal(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.audit(c, auditDomain.ActionViewSecret, id.String(), nil)

	c.JSON(http.StatusOK, dto.RevealSecretResponse{
		ID:    id.String(),
		Value: value,
	})
}

// RotateHandler replaces a secret's stored value.
// PUT /v1/secrets/:id
// Returns 200 OK with the id and the new updatedAt.
func (h *SecretHandler) RotateHandler(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	var request dto.RotateSecretRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := request.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	record, err := h.secretUC.Rotate(c.Request.Context(), id, request.PlainValue)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.audit(c, auditDomain.ActionUpdate, id.String(), map[string]any{
		"appId": record.AppID,
	})

	c.JSON(http.StatusOK, dto.RotateSecretResponse{
		ID:        record.ID.String(),
		UpdatedAt: record.UpdatedAt,
	})
}

// DeleteHandler permanently removes a secret record.
// DELETE /v1/secrets/:id
// Returns 204 No Content on success, 404 for unknown ids.
func (h *SecretHandler) DeleteHandler(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	if err := h.secretUC.Delete(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.audit(c, auditDomain.ActionDelete, id.String(), nil)

	c.Status(http.StatusNoContent)
}
