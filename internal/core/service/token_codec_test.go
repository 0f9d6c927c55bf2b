package service

import (
	"errors"
	"testing"
	"time"

	"github.com/ecotrack/ecotrack-api/internal/core/domain"
)

func TestJWTCodec_RoundTrip(t *testing.T) {
	codec := NewJWTCodec("test-secret", time.Hour)
	now := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	token, err := codec.Issue(42, now)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	subject, err := codec.VerifyAt(token, now)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if subject != 42 {
		t.Fatalf("expected subject 42, got %d", subject)
	}

	// Still valid just inside the window.
	if _, err := codec.VerifyAt(token, now.Add(59*time.Minute)); err != nil {
		t.Fatalf("token rejected before expiry: %v", err)
	}
}

func TestJWTCodec_DifferentInstantsYieldDifferentTokens(t *testing.T) {
	codec := NewJWTCodec("test-secret", time.Hour)
	now := time.Now().UTC().Truncate(time.Second)

	a, err := codec.Issue(7, now)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	b, err := codec.Issue(7, now.Add(time.Second))
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if a == b {
		t.Fatalf("tokens for different instants must differ")
	}
}

func TestJWTCodec_Expiry(t *testing.T) {
	codec := NewJWTCodec("test-secret", time.Hour)
	now := time.Now().UTC()

	token, err := codec.Issue(42, now)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	_, err = codec.VerifyAt(token, now.Add(time.Hour+time.Second))
	if !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestJWTCodec_TamperedTokenRejected(t *testing.T) {
	codec := NewJWTCodec("test-secret", time.Hour)
	now := time.Now().UTC()

	token, err := codec.Issue(42, now)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	// Flip one byte at every position. Nothing may ever verify with a wrong
	// subject. The sole tolerated acceptance is the final signature character:
	// base64 ignores its unused trailing bits, so a low-bit flip there can
	// decode to the identical signature.
	for i := range token {
		raw := []byte(token)
		raw[i] ^= 0x01
		subject, err := codec.VerifyAt(string(raw), now)
		if err == nil {
			if i != len(token)-1 || subject != 42 {
				t.Fatalf("tampered token at byte %d verified with subject %d", i, subject)
			}
			continue
		}
		if !errors.Is(err, domain.ErrTokenSignature) && !errors.Is(err, domain.ErrTokenMalformed) {
			t.Fatalf("tampered token at byte %d: unexpected error %v", i, err)
		}
	}
}

func TestJWTCodec_WrongSecretRejected(t *testing.T) {
	now := time.Now().UTC()

	token, err := NewJWTCodec("secret-one", time.Hour).Issue(1, now)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	_, err = NewJWTCodec("secret-two", time.Hour).VerifyAt(token, now)
	if !errors.Is(err, domain.ErrTokenSignature) {
		t.Fatalf("expected ErrTokenSignature, got %v", err)
	}
}

func TestJWTCodec_GarbageInput(t *testing.T) {
	codec := NewJWTCodec("test-secret", time.Hour)
	now := time.Now().UTC()

	for _, input := range []string{"", "x", "a.b", "a.b.c", "....."} {
		if _, err := codec.VerifyAt(input, now); err == nil {
			t.Fatalf("garbage input %q verified", input)
		}
	}
}
