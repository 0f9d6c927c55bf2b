package service

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashIsSaltedAndVerifiable(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	first, err := h.Hash("s3cret-password")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	second, err := h.Hash("s3cret-password")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}

	if first == second {
		t.Fatalf("two hashes of the same password must differ (fresh salt per call)")
	}
	if first == "s3cret-password" || strings.Contains(first, "s3cret-password") {
		t.Fatalf("hash must not contain the plaintext")
	}
	if !h.Verify("s3cret-password", first) {
		t.Fatalf("first hash did not verify")
	}
	if !h.Verify("s3cret-password", second) {
		t.Fatalf("second hash did not verify")
	}
}

func TestBcryptHasher_WrongPasswordRejected(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("correct horse")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if h.Verify("battery staple", hash) {
		t.Fatalf("wrong password verified")
	}
}

func TestBcryptHasher_MalformedHashIsMismatchNotPanic(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	for _, bad := range []string{"", "not-a-bcrypt-hash", "$2a$garbage"} {
		if h.Verify("anything", bad) {
			t.Fatalf("malformed hash %q verified", bad)
		}
	}
}

func TestNewBcryptHasher_CostOutOfRangeFallsBack(t *testing.T) {
	for _, cost := range []int{-1, 0, bcrypt.MaxCost + 1} {
		h := NewBcryptHasher(cost)
		if h.cost != bcrypt.DefaultCost {
			t.Fatalf("cost %d: expected fallback to default, got %d", cost, h.cost)
		}
	}
}
