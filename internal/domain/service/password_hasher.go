// Package service defines interfaces for domain capabilities that live outside this process
// or outside a single entity: the remote gateway, notifications, tokens, QR codes, hashing.
package service

// PasswordHasher defines the interface for password hashing and verification.
// The development gateway uses it to store accounts.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash to see if they match.
	Check(password, hash string) bool
}
