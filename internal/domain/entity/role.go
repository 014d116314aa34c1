// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a user can have in the admin application.
type Role string

const (
	// RoleSystemAdmin manages every company and user.
	RoleSystemAdmin Role = "SYSTEM_ADMIN"
	// RoleCompanyAdmin manages the users of one company.
	RoleCompanyAdmin Role = "COMPANY_ADMIN"
	// RoleCompanyUser files purchase requests for one company.
	RoleCompanyUser Role = "COMPANY_USER"
)

// rolePriority orders roles from highest to lowest.
var rolePriority = []Role{RoleSystemAdmin, RoleCompanyAdmin, RoleCompanyUser}

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	return slices.Contains(rolePriority, r)
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// Intersects reports whether rs and other share at least one role.
func (rs Roles) Intersects(other Roles) bool {
	return slices.ContainsFunc(rs, other.Contains)
}

// Primary returns the first role, which is conventionally the primary one.
func (rs Roles) Primary() (Role, bool) {
	if len(rs) == 0 {
		return "", false
	}

	return rs[0], true
}

// Highest returns the highest-priority role in rs.
// SYSTEM_ADMIN outranks COMPANY_ADMIN, which outranks COMPANY_USER.
func (rs Roles) Highest() (Role, bool) {
	for _, role := range rolePriority {
		if rs.Contains(role) {
			return role, true
		}
	}

	return "", false
}

// ToStrings converts Roles to []string.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}
