package domain

// policy is the fixed role to operation grant table. It is evaluated locally
// on every request and is not configurable at runtime.
var policy = map[Role]map[Operation]bool{
	RoleAdmin: {
		OperationList:      true,
		OperationCreate:    true,
		OperationRotate:    true,
		OperationReveal:    true,
		OperationDelete:    true,
		OperationAuditRead: true,
	},
	RoleEditor: {
		OperationList:      true,
		OperationCreate:    true,
		OperationRotate:    true,
		OperationAuditRead: true,
	},
	RoleReader: {
		OperationList: true,
	},
}

// Allowed reports whether the role is granted the operation. Unknown roles and
// unknown operations are denied.
func Allowed(role Role, op Operation) bool {
	return policy[role][op]
}
