package ports

import (
	"context"

	"github.com/ecotrack/ecotrack-api/internal/core/domain"
)

// AuthRepository defines the interface for user credential persistence.
//
// Create must enforce username and email uniqueness atomically: under two
// concurrent inserts for the same identity exactly one succeeds and the other
// returns domain.ErrUserExists. A check-then-write implementation is not
// acceptable.
//
// FindByIdentifier resolves an ambiguous identifier deterministically: an
// exact username match wins over an email match.
type AuthRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByIdentifier(ctx context.Context, identifier string) (*domain.User, error)
}
