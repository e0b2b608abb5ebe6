// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the account entity owned by the credential store.
// The plaintext password never appears here: only the per-user salt and the
// digest derived from (password, salt) are persisted.
type User struct {
	ID             uuid.UUID // Opaque unique identifier, assigned at creation, never reused.
	Username       string    // Unique login name; immutable after creation (no rename operation exists).
	Salt           string    // Per-user random salt, 32 lowercase hex chars; regenerated on every password change.
	HashedPassword string    // Digest of (password, salt), 64 lowercase hex chars.
	CreatedAt      time.Time // Timestamp of account creation.
	UpdatedAt      time.Time // Timestamp of the last modification (e.g. a password rotation).
}
