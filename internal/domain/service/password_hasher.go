// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher is the salted-hash scheme protecting stored passwords.
// All three operations are pure: the salt is generated per user, the digest is
// a deterministic function of (password, salt), and verification recomputes
// rather than decrypts. Salting ensures two users with identical passwords
// never share a stored digest.
type PasswordHasher interface {
	// GenerateSalt produces a fresh cryptographically random salt, rendered
	// as a lowercase hex string. Collisions are not corrected for, only made
	// statistically negligible by the entropy width.
	GenerateSalt() (string, error)

	// Hash derives the digest for (password, salt). Same inputs always yield
	// the same digest; the plaintext cannot feasibly be recovered from it.
	Hash(password, salt string) string

	// Verify reports whether password matches the stored digest for the
	// given salt. The comparison runs in constant time with respect to
	// where the digests differ.
	Verify(password, salt, digest string) bool
}
