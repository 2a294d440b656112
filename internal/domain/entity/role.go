// Package entity contains the core business objects of the back office.
package entity

// Role represents the kind of principal a session token is issued to.
type Role string

const (
	// RoleAdmin is a back office operator.
	RoleAdmin Role = "admin"
	// RoleSuperAdmin is an operator with full privileges.
	RoleSuperAdmin Role = "superadmin"
	// RoleManager is a field manager assigned to an area.
	RoleManager Role = "manager"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleSuperAdmin, RoleManager:
		return true
	default:
		return false
	}
}

// IsOperator reports whether the role may manage back office entities.
func (r Role) IsOperator() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}
