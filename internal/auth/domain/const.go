package domain

import (
	"fmt"

	"github.com/controleapp/inventory/internal/errors"
)

// Role is the authorization level carried by an authenticated user.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleReader Role = "leitor"
)

// ParseRole validates a raw role string against the closed set of known roles.
func ParseRole(raw string) (Role, error) {
	switch Role(raw) {
	case RoleAdmin, RoleEditor, RoleReader:
		return Role(raw), nil
	default:
		return "", errors.Wrap(errors.ErrInvalidInput, fmt.Sprintf("unknown role: %q", raw))
	}
}

// Operation is a protected action a caller may attempt against the API.
type Operation string

const (
	OperationList      Operation = "list"
	OperationCreate    Operation = "create"
	OperationRotate    Operation = "rotate"
	OperationReveal    Operation = "reveal"
	OperationDelete    Operation = "delete"
	OperationAuditRead Operation = "audit-read"
)
