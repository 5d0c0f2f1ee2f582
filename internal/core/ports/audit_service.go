package ports

import (
	"context"
	"time"
)

// AuditInput describes a single movie mutation to be recorded.
type AuditInput struct {
	MovieID   string
	Action    string
	Actor     string
	Fields    []string
	Timestamp time.Time
}

// AuditService persists audit inputs. Implementations are invoked from the
// queue dispatcher, off the request path.
type AuditService interface {
	Record(ctx context.Context, input AuditInput) error
}
