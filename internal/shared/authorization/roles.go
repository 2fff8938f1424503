// Package authorization defines the workflow roles carried by identity tokens.
package authorization

import "slices"

type Role string

const (
	RoleClerk        Role = "clerk"
	RoleInspector    Role = "inspector"
	RoleSupervisor   Role = "supervisor"
	RoleManager      Role = "manager"
	RoleDivisionHead Role = "division_head"
	RoleAdmin        Role = "admin"
)

// AllRoles lists roles from intake to administration.
var AllRoles = []Role{RoleClerk, RoleInspector, RoleSupervisor, RoleManager, RoleDivisionHead, RoleAdmin}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return slices.Contains(AllRoles, r)
}

// ParseRole returns the role named by s, or ok=false when s is unknown.
func ParseRole(s string) (Role, bool) {
	role := Role(s)
	return role, role.IsValid()
}
