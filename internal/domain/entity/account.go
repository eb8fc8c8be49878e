// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// Account is the core entity of the system: a registered identity with a
// unique username and a unique email address.
type Account struct {
	ID           int64     // Database-generated identifier, assigned exactly once at creation.
	Username     string    // Unique display/login name, at most 50 characters.
	Email        string    // Unique email address, at most 255 characters. Lookups are case-sensitive.
	PasswordHash string    // bcrypt hash of the password. Never leaves the persistence/hasher boundary.
	CreatedAt    time.Time // Set by the database at creation, immutable afterwards.
}
