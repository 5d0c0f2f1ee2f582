package ports

import (
	"context"

	"github.com/moviehub/movie-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	// Login returns a signed bearer token. Unknown usernames and wrong
	// passwords are indistinguishable: both yield domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, error)
	// Resolve maps a bearer token back to its principal. Any failure, including
	// a subject that no longer exists, yields domain.ErrUnauthenticated.
	Resolve(ctx context.Context, token string) (*domain.User, error)
}
