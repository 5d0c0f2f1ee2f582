package ports

import (
	"context"

	"github.com/moviehub/movie-api/internal/core/domain"
)

// CreateMovieInput carries all data needed to create a new movie.
type CreateMovieInput struct {
	Title       string
	Description string
	Rating      float64
	Director    string
	Year        int
	Genres      []string
	// Actor is the username of the authenticated caller, for the audit trail.
	Actor string
}

// UpdateMovieInput is the transport-level field mask: nil fields were not
// supplied by the caller and must be left unchanged.
type UpdateMovieInput struct {
	Title       *string
	Description *string
	Rating      *float64
	Director    *string
	Year        *int
	Genres      *[]string
	Actor       string
}

// ListMoviesInput carries pagination parameters. Zero values select the
// service defaults (offset 0, limit 10); negative values are rejected.
type ListMoviesInput struct {
	Offset int64
	Limit  int64
}

// ListMoviesResult is returned by List.
type ListMoviesResult struct {
	Items  []*domain.Movie
	Total  int64
	Offset int64
	Limit  int64
}

// MovieService defines use-case operations for movies.
type MovieService interface {
	Create(ctx context.Context, input CreateMovieInput) (*domain.Movie, error)
	Get(ctx context.Context, id string) (*domain.Movie, error)
	List(ctx context.Context, input ListMoviesInput) (*ListMoviesResult, error)
	Update(ctx context.Context, id string, input UpdateMovieInput) (*domain.Movie, error)
	Delete(ctx context.Context, id string, actor string) error
}
