package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowed(t *testing.T) {
	cases := []struct {
		role    Role
		op      Operation
		allowed bool
	}{
		{RoleAdmin, OperationList, true},
		{RoleAdmin, OperationCreate, true},
		{RoleAdmin, OperationRotate, true},
		{RoleAdmin, OperationReveal, true},
		{RoleAdmin, OperationDelete, true},
		{RoleAdmin, OperationAuditRead, true},

		{RoleEditor, OperationList, true},
		{RoleEditor, OperationCreate, true},
		{RoleEditor, OperationRotate, true},
		{RoleEditor, OperationReveal, false},
		{RoleEditor, OperationDelete, false},
		{RoleEditor, OperationAuditRead, true},

		{RoleReader, OperationList, true},
		{RoleReader, OperationCreate, false},
		{RoleReader, OperationRotate, false},
		{RoleReader, OperationReveal, false},
		{RoleReader, OperationDelete, false},
		{RoleReader, OperationAuditRead, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, Allowed(tc.role, tc.op), "%s/%s", tc.role, tc.op)
	}
}

func TestAllowed_UnknownRole(t *testing.T) {
	assert.False(t, Allowed(Role("root"), OperationList))
	assert.False(t, Allowed(Role(""), OperationList))
}

func TestParseRole(t *testing.T) {
	for _, raw := range []string{"admin", "editor", "leitor"} {
		role, err := ParseRole(raw)
		assert.NoError(t, err)
		assert.Equal(t, Role(raw), role)
	}

	for _, raw := range []string{"", "Admin", "reader", "root"} {
		_, err := ParseRole(raw)
		assert.Error(t, err)
	}
}
