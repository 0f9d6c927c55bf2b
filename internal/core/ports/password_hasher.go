package ports

// PasswordHasher is a one-way, salted, adaptive-cost password transform.
//
// Hash embeds algorithm, cost, and salt in the returned string, so the cost
// factor can be raised later without invalidating stored hashes. Verify
// reports false for a wrong password or a malformed hash; it never errors for
// a mere mismatch.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}
