// Package service defines the ports the use cases depend on for work that
// lives outside the domain: hashing, tokens, events and metrics.
package service

// PasswordHasher turns admin and manager passwords into salted digests.
type PasswordHasher interface {
	// Hash returns a new salted digest of password.
	Hash(password string) (string, error)

	// Check reports whether password matches hash. A malformed hash never matches.
	Check(password, hash string) bool
}
