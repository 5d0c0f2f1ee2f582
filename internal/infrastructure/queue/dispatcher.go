package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/moviehub/movie-api/internal/api/metrics"
	"github.com/moviehub/movie-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes audit records to a fixed set of workers using consistent
// hashing on the movie id, guaranteeing per-movie write ordering. Audit writes
// happen off the request path; failures are logged, never surfaced to callers.
type Dispatcher struct {
	workers []chan ports.AuditInput
	service ports.AuditService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.AuditService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.AuditInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.AuditInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a record to the worker responsible for its movie id.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(input ports.AuditInput) {
	idx := d.shardIndex(input.MovieID)
	d.workers[idx] <- input
	metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

// shardIndex maps a movie id deterministically to a worker index.
func (d *Dispatcher) shardIndex(movieID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(movieID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.AuditInput) {
	for {
		select {
		case <-ctx.Done():
			return
		case input, ok := <-ch:
			if !ok {
				return
			}
			if err := d.service.Record(ctx, input); err != nil {
				metrics.AuditErrorsTotal.WithLabelValues("record_failed").Inc()
				d.log.Error().Err(err).
					Str("movie_id", input.MovieID).
					Str("action", input.Action).
					Int("worker_id", id).
					Msg("audit record failed")
			}
			metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(float64(len(ch)))
		}
	}
}
