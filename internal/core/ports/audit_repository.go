package ports

import (
	"context"

	"github.com/moviehub/movie-api/internal/core/domain"
)

// AuditRepository persists audit records of movie mutations.
type AuditRepository interface {
	Insert(ctx context.Context, record *domain.AuditRecord) error
}
