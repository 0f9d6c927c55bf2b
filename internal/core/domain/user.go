package domain

import (
	"errors"
	"time"
)

// User models a registered account. The password hash is opaque to every layer
// except the hasher; the plaintext never leaves the login/register request.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

var ErrUserExists = errors.New("username or email already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")

// Token verification failures. The error handler collapses all three to the
// same external response so a caller cannot tell which check failed.
var ErrTokenMalformed = errors.New("token malformed")
var ErrTokenSignature = errors.New("token signature invalid")
var ErrTokenExpired = errors.New("token expired")
