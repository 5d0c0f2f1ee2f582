package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/moviehub/movie-api/internal/core/ports"
)

type recordingAuditService struct {
	mu      sync.Mutex
	records []ports.AuditInput
	done    chan struct{}
	want    int
}

func (s *recordingAuditService) Record(_ context.Context, input ports.AuditInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, input)
	if len(s.records) == s.want {
		close(s.done)
	}
	return nil
}

func TestDispatcher_PreservesPerMovieOrdering(t *testing.T) {
	svc := &recordingAuditService{done: make(chan struct{}), want: 3}
	d := NewDispatcher(4, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for _, action := range []string{"create", "update", "delete"} {
		d.Enqueue(ports.AuditInput{MovieID: "same-movie", Action: action})
	}

	select {
	case <-svc.done:
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for audit records")
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()
	// Same movie id always hashes to the same worker, so order is preserved.
	for i, want := range []string{"create", "update", "delete"} {
		if svc.records[i].Action != want {
			t.Fatalf("expected %s at position %d, got %s", want, i, svc.records[i].Action)
		}
	}
}

func TestDispatcher_ShardIsDeterministic(t *testing.T) {
	d := NewDispatcher(8, &recordingAuditService{done: make(chan struct{}), want: 0}, zerolog.Nop())

	first := d.shardIndex("abc123")
	for i := 0; i < 100; i++ {
		if d.shardIndex("abc123") != first {
			t.Fatalf("shard index not deterministic")
		}
	}
}
