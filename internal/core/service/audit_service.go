package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/moviehub/movie-api/internal/api/metrics"
	"github.com/moviehub/movie-api/internal/core/domain"
	"github.com/moviehub/movie-api/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService implementation backed by the given
// repository.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

// Record persists a single audit input.
func (s *auditService) Record(ctx context.Context, in ports.AuditInput) error {
	record := &domain.AuditRecord{
		MovieID:   in.MovieID,
		Action:    in.Action,
		Actor:     in.Actor,
		Fields:    in.Fields,
		Timestamp: in.Timestamp,
	}

	if err := s.repo.Insert(ctx, record); err != nil {
		return fmt.Errorf("record audit: %w", err)
	}

	metrics.AuditRecordsTotal.WithLabelValues(in.Action).Inc()
	s.log.Debug().
		Str("movie_id", in.MovieID).
		Str("action", in.Action).
		Str("actor", in.Actor).
		Msg("audit record written")

	return nil
}
