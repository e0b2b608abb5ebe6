// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"bookshelf/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository is the credential store: it owns User persistence and the
// uniqueness/not-found contracts around it.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a single user by their username, or
	// ErrUserNotFound when absent. Storage failures propagate as errors,
	// never as a false not-found.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Create persists a new user. The users table carries a unique index on
	// username; a constraint violation surfaces as the duplicate-username
	// domain error regardless of any application-level pre-check.
	Create(ctx context.Context, user *entity.User) error

	// UpdateCredentials replaces the salt and digest together in a single
	// atomic write. A reader must never observe a new salt paired with an
	// old digest or vice versa. Returns ErrUserNotFound if no row matched.
	UpdateCredentials(ctx context.Context, username, salt, hashedPassword string) error

	// Delete removes the user by id. Returns ErrUserNotFound if the id does
	// not exist, including on a repeated delete.
	Delete(ctx context.Context, id uuid.UUID) error
}
