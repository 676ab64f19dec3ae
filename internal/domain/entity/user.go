// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is a pet owner account.
type User struct {
	ID           uint      // Numeric identity assigned by the database.
	Email        string    // Login identifier, unique and compared case-sensitively.
	PasswordHash string    // bcrypt hash; the plaintext is never stored.
	FirstName    string    // Optional given name.
	LastName     string    // Optional family name.
	Role         Role      // Defaults to RoleUser.
	CreatedAt    time.Time // Timestamp of when this account was created.
}
