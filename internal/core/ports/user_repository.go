package ports

import (
	"context"

	"github.com/moviehub/movie-api/internal/core/domain"
)

// UserRepository defines the interface for credential persistence.
// Create must be atomic with respect to the username: concurrent inserts of the
// same username may succeed at most once, the rest surface domain.ErrUserExists.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}
