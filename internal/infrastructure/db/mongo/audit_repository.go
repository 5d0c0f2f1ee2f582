package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/moviehub/movie-api/internal/core/domain"
	"github.com/moviehub/movie-api/internal/core/ports"
)

const collectionAudit = "movie_audit"

// AuditRepository implements ports.AuditRepository using MongoDB.
type AuditRepository struct {
	db *mongo.Database
}

// NewAuditRepository creates a new AuditRepository.
func NewAuditRepository(db *mongo.Database) ports.AuditRepository {
	return &AuditRepository{db: db}
}

// Insert persists an audit record to the movie_audit collection.
func (r *AuditRepository) Insert(ctx context.Context, record *domain.AuditRecord) error {
	doc := bson.M{
		"movie_id":     record.MovieID,
		"action":       record.Action,
		"actor":        record.Actor,
		"timestamp":    record.Timestamp.UTC(),
		"processed_at": time.Now().UTC(),
	}
	if len(record.Fields) > 0 {
		doc["fields"] = record.Fields
	}

	_, err := r.db.Collection(collectionAudit).InsertOne(ctx, doc)
	return err
}
