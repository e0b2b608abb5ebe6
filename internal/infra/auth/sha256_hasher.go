// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"bookshelf/internal/domain/service"

	"github.com/pkg/errors"
)

// saltLength is the number of random bytes per salt; rendered as hex it
// becomes the 32-char column value the store expects.
const saltLength = 16

// sha256Hasher is a concrete implementation of the PasswordHasher interface.
// It derives a SHA-256 digest over password+salt, matching the stored
// representation of a 32-hex-char salt and 64-hex-char digest.
type sha256Hasher struct{}

// NewSHA256Hasher is the constructor for sha256Hasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewSHA256Hasher() service.PasswordHasher {
	return &sha256Hasher{}
}

// GenerateSalt produces 16 cryptographically random bytes as lowercase hex.
func (h *sha256Hasher) GenerateSalt() (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(err, "failed to read random salt")
	}

	return hex.EncodeToString(salt), nil
}

// Hash derives the hex digest of password+salt. Deterministic in its inputs.
func (h *sha256Hasher) Hash(password, salt string) string {
	sum := sha256.Sum256([]byte(password + salt))

	return hex.EncodeToString(sum[:])
}

// Verify recomputes the digest and compares in constant time, so response
// timing reveals nothing about where the digests diverge.
func (h *sha256Hasher) Verify(password, salt, digest string) bool {
	computed := h.Hash(password, salt)

	return subtle.ConstantTimeCompare([]byte(computed), []byte(digest)) == 1
}
