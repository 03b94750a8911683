// Package domain defines the audit trail model: the event record and the
// closed set of recorded actions.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Action identifies what an audit event records.
type Action string

const (
	ActionLoginSuccess Action = "login_success"
	ActionLoginFailed  Action = "login_failed"
	ActionAccessDenied Action = "access_denied"
	ActionViewSecret   Action = "view_secret"
	ActionCreate       Action = "create"
	ActionUpdate       Action = "update"
	ActionDelete       Action = "delete"
)

// Event is a single audit trail entry. Context carries action-specific
// details and must never contain plaintext secret material.
type Event struct {
	ID         uuid.UUID      `json:"id"`
	ActorID    string         `json:"actorId"`
	ActorEmail string         `json:"actorEmail"`
	Action     Action         `json:"action"`
	Resource   string         `json:"resource"`
	ResourceID string         `json:"resourceId,omitempty"`
	Context    map[string]any `json:"context,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
}
