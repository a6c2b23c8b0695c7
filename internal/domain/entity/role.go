// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role an account can have in the system.
// The auth gate does not act on it today; it is carried in the account
// record for future role-based gating.
type Role string

const (
	// RoleDonor indicates a blood donor account.
	RoleDonor Role = "donor"
	// RoleAdmin indicates an administrator account.
	RoleAdmin Role = "admin"
	// RoleHospital indicates a hospital staff account.
	RoleHospital Role = "hospital"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleDonor, RoleAdmin, RoleHospital:
		return true
	default:
		return false
	}
}
