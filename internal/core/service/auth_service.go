package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/ecotrack/ecotrack-api/internal/core/domain"
	"github.com/ecotrack/ecotrack-api/internal/core/ports"
)

// AuthService implements registration and login.
type AuthService struct {
	repo   ports.AuthRepository
	hasher ports.PasswordHasher
	codec  ports.TokenCodec
	audit  ports.AuditRecorder
	log    zerolog.Logger
}

func NewAuthService(repo ports.AuthRepository, hasher ports.PasswordHasher, codec ports.TokenCodec, audit ports.AuditRecorder, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, codec: codec, audit: audit, log: log}
}

// Register hashes the password and writes a new credential record. Uniqueness
// of username and email is enforced by the repository, not pre-checked here,
// so concurrent registrations for the same identity race safely: exactly one
// wins and the loser gets domain.ErrUserExists.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		s.recordAudit(domain.AuditRegister, username, domain.OutcomeRejected)
		return nil, err
	}

	s.recordAudit(domain.AuditRegister, username, domain.OutcomeSuccess)
	return created, nil
}

// Login validates the credentials and issues a session token. A missing user
// and a wrong password both surface as domain.ErrInvalidCredentials: the two
// cases must be externally indistinguishable so an attacker cannot enumerate
// usernames. The distinction exists only in server-side logs, and the log
// fields never include the password or the issued token.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (string, *domain.User, error) {
	if identifier == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.log.Debug().Str("identifier", identifier).Msg("login rejected: unknown identifier")
			s.recordAudit(domain.AuditLogin, identifier, domain.OutcomeRejected)
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.log.Debug().Str("username", user.Username).Msg("login rejected: password mismatch")
		s.recordAudit(domain.AuditLogin, user.Username, domain.OutcomeRejected)
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.codec.Issue(user.ID, time.Now().UTC())
	if err != nil {
		return "", nil, err
	}

	s.recordAudit(domain.AuditLogin, user.Username, domain.OutcomeSuccess)
	return token, user, nil
}

func (s *AuthService) recordAudit(action, username, outcome string) {
	if s.audit == nil {
		return
	}
	s.audit.Record(domain.AuditEvent{
		Action:     action,
		Username:   username,
		Outcome:    outcome,
		OccurredAt: time.Now().UTC(),
	})
}
