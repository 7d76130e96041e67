// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// CodeHasher hashes short secrets (OTP codes) so they are never stored in plain text.
type CodeHasher interface {
	// Hash generates a salted hash of code.
	Hash(code string) (string, error)

	// Check compares a plaintext code with a hash.
	Check(code, hash string) bool
}
