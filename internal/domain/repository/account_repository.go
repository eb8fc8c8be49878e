// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"gatekeeper/internal/domain/entity"
)

// Domain-specific errors for account persistence.
// This allows the application layer to handle specific outcomes without depending on database-specific errors.
var (
	// ErrAccountNotFound is returned when no account matches the lookup.
	ErrAccountNotFound = errors.New("account not found")
	// ErrDuplicateAccount is returned when an insert would violate the
	// username or email uniqueness constraint. Detection happens at insert
	// time inside the database, never as a pre-check, so two concurrent
	// registrations for the same credential cannot both succeed.
	ErrDuplicateAccount = errors.New("username or email already taken")
)

// AccountRepository defines the standard operations for account persistence.
// The application layer will depend on this interface, not the concrete implementation.
type AccountRepository interface {
	// Create persists a new account as a single atomic insert and fills in
	// the generated ID and creation timestamp on success.
	Create(ctx context.Context, account *entity.Account) error

	// FindByEmail retrieves a single account by its email address.
	// The match is case-sensitive and exact.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)
}
