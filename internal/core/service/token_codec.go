package service

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ecotrack/ecotrack-api/internal/core/domain"
)

// DefaultTokenTTL is the session validity window.
const DefaultTokenTTL = time.Hour

// JWTCodec implements ports.TokenCodec with HS256-signed JWTs.
//
// The secret is fixed at construction and read-only afterwards, so concurrent
// Issue/VerifyAt calls need no locking. Rotating the secret (by restarting the
// process) invalidates every outstanding token at once; sessions are short
// enough that no grace period is provided.
type JWTCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTCodec builds a codec for the given secret. The caller (config layer)
// guarantees the secret is non-empty; ttl <= 0 falls back to DefaultTokenTTL.
func NewJWTCodec(secret string, ttl time.Duration) *JWTCodec {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &JWTCodec{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token binding subjectID to [now, now+ttl].
func (c *JWTCodec) Issue(subjectID int64, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(subjectID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// VerifyAt validates signature and expiry as of now and returns the subject id.
// All structurally invalid input maps to a typed domain error; nothing panics.
func (c *JWTCodec) VerifyAt(token string, now time.Time) (int64, error) {
	claims := jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, &claims,
		func(t *jwt.Token) (interface{}, error) {
			if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return c.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return now }),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return 0, domain.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
			return 0, domain.ErrTokenSignature
		default:
			return 0, domain.ErrTokenMalformed
		}
	}
	if !parsed.Valid {
		return 0, domain.ErrTokenSignature
	}

	subject, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, domain.ErrTokenMalformed
	}
	return subject, nil
}
