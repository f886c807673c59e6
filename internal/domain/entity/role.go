// Package entity contains the core business objects of the project.
package entity

// Role represents the privilege label carried by a user account.
type Role string

const (
	// RoleStandardUser is stamped on every account at registration.
	RoleStandardUser Role = "StandardUser"
	// RoleAdministrator marks accounts allowed to author catalog content.
	RoleAdministrator Role = "Administrator"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleStandardUser, RoleAdministrator:
		return true
	default:
		return false
	}
}
