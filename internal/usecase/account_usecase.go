// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"bookshelf/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterAccountInput defines the data required to create a new account.
type RegisterAccountInput struct {
	Username string
	Password string
}

// LoginInput defines the data required to verify credentials.
type LoginInput struct {
	Username string
	Password string
}

// UpdatePasswordInput defines the data required to rotate a password.
type UpdatePasswordInput struct {
	Username    string
	NewPassword string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account's basic information.
type RegisterOutput struct {
	User *entity.User
}

// AccountUsecase defines the interface for credential-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	// Register creates a new account with a freshly salted password digest.
	Register(ctx context.Context, input RegisterAccountInput) (*RegisterOutput, error)

	// Login verifies a username/password pair without establishing any session.
	Login(ctx context.Context, input LoginInput) error

	// UpdatePassword replaces the stored salt and digest for an account.
	UpdatePassword(ctx context.Context, input UpdatePasswordInput) error

	// DeleteAccount removes an account by its ID.
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}
