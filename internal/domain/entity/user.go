// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is an account that can author articles. Email doubles as the login
// identifier and is globally unique.
type User struct {
	ID           int64     // Primary identifier, assigned by the database.
	Email        string    // Unique login identifier.
	Username     string    // Display name, not required to be unique.
	PasswordHash string    // bcrypt hash of the user's password. Never exposed outside the service layer.
	IsActive     bool      // Soft activation flag.
	CreatedAt    time.Time // Timestamp of when this account was created.
}
