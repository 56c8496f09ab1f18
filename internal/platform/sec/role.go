// Copyright (c) 2026 Sommelier. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// # Operator Roles

// UserRole represents the authorization level granted to an operator.
type UserRole string

const (
	// Manages operators and reads the audit log
	RoleAdmin UserRole = "admin"

	// Edits the wine and dish catalogs
	RoleOperator UserRole = "operator"

	// Read-only access to the catalogs
	RoleViewer UserRole = "viewer"
)

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() > 0 && r.level() >= target.level()
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r UserRole) level() int {
	switch r {
	case RoleAdmin:
		return 30
	case RoleOperator:
		return 20
	case RoleViewer:
		return 10
	default:
		return 0
	}
}
