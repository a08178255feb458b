// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleAdmin manages every resource.
	RoleAdmin Role = "admin"
	// RoleCreator authors campaigns and newsletter articles.
	RoleCreator Role = "creator"
	// RoleViewer has read-only access to campaigns and logs.
	RoleViewer Role = "viewer"
	// RoleUser is an end user who receives notifications.
	RoleUser Role = "user"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleCreator, RoleViewer, RoleUser:
		return true
	default:
		return false
	}
}

// Roles is a set of roles allowed through a route gate.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// Route gates. Ownership of individual campaigns and articles is checked in the use cases.
//
//nolint:gochecknoglobals
var (
	// AuthorRoles may create, edit, schedule and send content, and drive order status.
	AuthorRoles = Roles{RoleAdmin, RoleCreator}
	// OperatorRoles may read campaigns and delivery logs.
	OperatorRoles = Roles{RoleAdmin, RoleCreator, RoleViewer}
	// RecipientRoles may subscribe to newsletters and place orders.
	RecipientRoles = Roles{RoleUser}
	// AllRoles lets any authenticated caller through.
	AllRoles = Roles{RoleAdmin, RoleCreator, RoleViewer, RoleUser}
)
