package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleUser is assigned to every account created through registration.
	RoleUser Role = "user"
	// RoleAdmin is granted out of band.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}
