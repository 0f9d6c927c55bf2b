package service

import (
	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher implements ports.PasswordHasher with bcrypt.
//
// bcrypt generates a fresh random salt per call and encodes algorithm, cost,
// salt, and digest in one self-describing string, so the cost can be raised
// later without rehashing existing records. Comparison inside the library has
// no early-exit timing leak.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher with the given cost factor. A cost outside
// bcrypt's supported range falls back to bcrypt.DefaultCost (10), which keeps
// single-hash latency in the tens of milliseconds.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches hash. A malformed hash string is
// treated as a mismatch, not an error: this is the boundary applied to
// storage-layer data during login and must never panic.
func (h *BcryptHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
