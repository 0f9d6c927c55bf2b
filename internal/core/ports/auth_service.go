package ports

import (
	"context"

	"github.com/ecotrack/ecotrack-api/internal/core/domain"
)

// AuthService orchestrates registration and login.
//
// Login returns domain.ErrInvalidCredentials both when no user matches the
// identifier and when the password is wrong; callers must not be able to tell
// the two apart.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	Login(ctx context.Context, identifier, password string) (string, *domain.User, error)
}
