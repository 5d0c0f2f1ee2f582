package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/moviehub/movie-api/internal/api/metrics"
	"github.com/moviehub/movie-api/internal/core/domain"
	"github.com/moviehub/movie-api/internal/core/ports"
)

const (
	defaultListLimit = 10
	maxListLimit     = 100
	maxRating        = 10
)

// MovieCache abstracts the single-movie read cache (Redis).
type MovieCache interface {
	Get(ctx context.Context, id string) (*domain.Movie, bool)
	Set(ctx context.Context, m *domain.Movie) error
	Invalidate(ctx context.Context, id string) error
}

// AuditSink receives audit inputs for asynchronous persistence.
type AuditSink interface {
	Enqueue(input ports.AuditInput)
}

// MovieService enforces the domain rules on top of the movie repository:
// required-field validation on create, field-mask semantics on update, and
// uniform not-found for absent ids.
type MovieService struct {
	repo  ports.MovieRepository
	cache MovieCache
	audit AuditSink
	log   zerolog.Logger
}

// NewMovieService creates a MovieService. cache and audit may be nil; both are
// optional collaborators.
func NewMovieService(repo ports.MovieRepository, cache MovieCache, audit AuditSink, log zerolog.Logger) *MovieService {
	return &MovieService{repo: repo, cache: cache, audit: audit, log: log}
}

// Create validates the required fields and stores the movie, returning it with
// its assigned id.
func (s *MovieService) Create(ctx context.Context, input ports.CreateMovieInput) (*domain.Movie, error) {
	if input.Title == "" || input.Description == "" {
		return nil, domain.ErrInvalidArgument
	}
	if input.Rating < 0 || input.Rating > maxRating {
		return nil, domain.ErrInvalidArgument
	}

	now := time.Now().UTC()
	movie := &domain.Movie{
		Title:       input.Title,
		Description: input.Description,
		Rating:      input.Rating,
		Director:    input.Director,
		Year:        input.Year,
		Genres:      input.Genres,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	id, err := s.repo.Insert(ctx, movie)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create movie")
		return nil, err
	}
	movie.ID = id

	metrics.MoviesCreatedTotal.Inc()
	s.log.Info().Str("movie_id", id).Str("title", movie.Title).Msg("movie created")

	s.cacheSet(ctx, movie)
	s.enqueueAudit(id, domain.AuditActionCreate, input.Actor, nil)

	return movie, nil
}

// Get returns the movie for id, consulting the cache first.
func (s *MovieService) Get(ctx context.Context, id string) (*domain.Movie, error) {
	if s.cache != nil {
		if m, ok := s.cache.Get(ctx, id); ok {
			metrics.MovieCacheTotal.WithLabelValues("hit").Inc()
			return m, nil
		}
		metrics.MovieCacheTotal.WithLabelValues("miss").Inc()
	}

	movie, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cacheSet(ctx, movie)
	return movie, nil
}

// List returns a page of movies in insertion order. Zero values select the
// defaults (offset 0, limit 10); negative values are rejected and the limit is
// capped at maxListLimit.
func (s *MovieService) List(ctx context.Context, input ports.ListMoviesInput) (*ports.ListMoviesResult, error) {
	if input.Offset < 0 || input.Limit < 0 {
		return nil, domain.ErrInvalidArgument
	}

	limit := input.Limit
	if limit == 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	items, total, err := s.repo.List(ctx, input.Offset, limit)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list movies")
		return nil, err
	}

	return &ports.ListMoviesResult{
		Items:  items,
		Total:  total,
		Offset: input.Offset,
		Limit:  limit,
	}, nil
}

// Update applies only the fields present in the mask; everything the caller
// omitted is left byte-identical in the store.
func (s *MovieService) Update(ctx context.Context, id string, input ports.UpdateMovieInput) (*domain.Movie, error) {
	update := domain.MovieUpdate{
		Title:       input.Title,
		Description: input.Description,
		Rating:      input.Rating,
		Director:    input.Director,
		Year:        input.Year,
		Genres:      input.Genres,
	}
	if update.IsEmpty() {
		return nil, domain.ErrInvalidArgument
	}
	if update.Title != nil && *update.Title == "" {
		return nil, domain.ErrInvalidArgument
	}
	if update.Description != nil && *update.Description == "" {
		return nil, domain.ErrInvalidArgument
	}
	if update.Rating != nil && (*update.Rating < 0 || *update.Rating > maxRating) {
		return nil, domain.ErrInvalidArgument
	}

	movie, err := s.repo.UpdateFields(ctx, id, update)
	if err != nil {
		return nil, err
	}

	s.invalidateCache(ctx, id)
	s.enqueueAudit(id, domain.AuditActionUpdate, input.Actor, update.FieldNames())
	s.log.Info().Str("movie_id", id).Strs("fields", update.FieldNames()).Msg("movie updated")

	return movie, nil
}

// Delete removes the movie. Deleting an absent id yields ErrMovieNotFound
// without error escalation.
func (s *MovieService) Delete(ctx context.Context, id string, actor string) error {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.log.Error().Err(err).Str("movie_id", id).Msg("failed to delete movie")
		return err
	}
	if !removed {
		return domain.ErrMovieNotFound
	}

	s.invalidateCache(ctx, id)
	s.enqueueAudit(id, domain.AuditActionDelete, actor, nil)
	s.log.Info().Str("movie_id", id).Msg("movie deleted")

	return nil
}

func (s *MovieService) cacheSet(ctx context.Context, m *domain.Movie) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, m); err != nil {
		s.log.Warn().Err(err).Str("movie_id", m.ID).Msg("failed to cache movie")
	}
}

func (s *MovieService) invalidateCache(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("movie_id", id).Msg("failed to invalidate cache")
	}
}

func (s *MovieService) enqueueAudit(movieID, action, actor string, fields []string) {
	if s.audit == nil {
		return
	}
	s.audit.Enqueue(ports.AuditInput{
		MovieID:   movieID,
		Action:    action,
		Actor:     actor,
		Fields:    fields,
		Timestamp: time.Now().UTC(),
	})
}
