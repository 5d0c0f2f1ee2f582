package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/moviehub/movie-api/internal/core/domain"
	"github.com/moviehub/movie-api/internal/core/ports"
)

const defaultTokenTTL = 30 * time.Minute

// AuthService implements registration, login, and token resolution on top of
// the credential store, password hasher, and token issuer.
type AuthService struct {
	users    ports.UserRepository
	hasher   ports.PasswordHasher
	tokens   ports.TokenIssuer
	tokenTTL time.Duration
	log      zerolog.Logger
}

func NewAuthService(users ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenIssuer, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &AuthService{users: users, hasher: hasher, tokens: tokens, tokenTTL: tokenTTL, log: log}
}

// Register hashes the password and inserts the credential. Uniqueness is
// enforced by the store's insert, not an application-level existence check, so
// concurrent registrations of the same username cannot both succeed.
func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidArgument
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", created.Username).Msg("user registered")
	return created, nil
}

// Login verifies the credentials and issues a bearer token. An unknown
// username and a wrong password produce the identical error, so callers cannot
// enumerate accounts.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Username, s.tokenTTL)
	if err != nil {
		return "", err
	}

	s.log.Info().Str("username", user.Username).Msg("login succeeded")
	return token, nil
}

// Resolve validates a bearer token and returns the principal it was issued
// for. The subject lookup catches deleted accounts holding stale but unexpired
// tokens; every failure collapses to ErrUnauthenticated.
func (s *AuthService) Resolve(ctx context.Context, token string) (*domain.User, error) {
	subject, err := s.tokens.Verify(token)
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}

	user, err := s.users.FindByUsername(ctx, subject)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, err
	}
	return user, nil
}
