package ports

import (
	"context"

	"github.com/moviehub/movie-api/internal/core/domain"
)

// MovieRepository defines persistence operations for movies.
//
// Identifiers are opaque strings produced by the store; callers never parse
// them. A malformed id and a missing id are indistinguishable: both yield
// domain.ErrMovieNotFound.
type MovieRepository interface {
	// Insert stores a new movie and returns its assigned id.
	Insert(ctx context.Context, m *domain.Movie) (string, error)
	FindByID(ctx context.Context, id string) (*domain.Movie, error)
	// List returns up to limit movies in insertion order, skipping offset,
	// together with the total count.
	List(ctx context.Context, offset, limit int64) ([]*domain.Movie, int64, error)
	// UpdateFields atomically applies the mask to the stored document and
	// returns the updated movie.
	UpdateFields(ctx context.Context, id string, update domain.MovieUpdate) (*domain.Movie, error)
	// Delete removes the movie and reports whether a document was removed.
	Delete(ctx context.Context, id string) (bool, error)
}
