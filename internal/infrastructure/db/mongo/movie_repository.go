package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/moviehub/movie-api/internal/core/domain"
)

const collectionMovies = "movies"

type MovieRepository struct {
	col *mongo.Collection
}

func NewMovieRepository(db *mongo.Database) *MovieRepository {
	return &MovieRepository{col: db.Collection(collectionMovies)}
}

type mongoMovie struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Rating      float64            `bson:"rating"`
	Director    string             `bson:"director,omitempty"`
	Year        int                `bson:"year,omitempty"`
	Genres      []string           `bson:"genres,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (m mongoMovie) toDomain() *domain.Movie {
	return &domain.Movie{
		ID:          m.ID.Hex(),
		Title:       m.Title,
		Description: m.Description,
		Rating:      m.Rating,
		Director:    m.Director,
		Year:        m.Year,
		Genres:      m.Genres,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// Insert stores a new movie document and returns the hex form of the ObjectID
// MongoDB assigned. ObjectIDs are never reused, so deleted ids stay dead.
func (r *MovieRepository) Insert(ctx context.Context, m *domain.Movie) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoMovie{
		Title:       m.Title,
		Description: m.Description,
		Rating:      m.Rating,
		Director:    m.Director,
		Year:        m.Year,
		Genres:      m.Genres,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert movie: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert movie: unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// FindByID retrieves a movie by its opaque id. An id that does not parse as an
// ObjectID is treated exactly like a missing document, so callers cannot tell
// bad id syntax apart from an absent id.
func (r *MovieRepository) FindByID(ctx context.Context, id string) (*domain.Movie, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrMovieNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m mongoMovie
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMovieNotFound
		}
		return nil, fmt.Errorf("find movie: %w", err)
	}
	return m.toDomain(), nil
}

// List returns up to limit movies skipping offset, sorted by _id ascending.
// ObjectIDs are time-ordered, so this is stable insertion order.
func (r *MovieRepository) List(ctx context.Context, offset, limit int64) ([]*domain.Movie, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("count movies: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(offset).
		SetLimit(limit)

	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list movies: %w", err)
	}
	defer cursor.Close(ctx)

	movies := make([]*domain.Movie, 0, limit)
	for cursor.Next(ctx) {
		var m mongoMovie
		if err := cursor.Decode(&m); err != nil {
			return nil, 0, fmt.Errorf("decode movie: %w", err)
		}
		movies = append(movies, m.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, fmt.Errorf("list movies: %w", err)
	}
	return movies, total, nil
}

// UpdateFields applies the mask with a single atomic $set and returns the
// document as it stands after the update. Fields absent from the mask are
// untouched, and concurrent updates to the same id cannot lose writes.
func (r *MovieRepository) UpdateFields(ctx context.Context, id string, update domain.MovieUpdate) (*domain.Movie, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrMovieNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updated_at": time.Now().UTC()}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Rating != nil {
		set["rating"] = *update.Rating
	}
	if update.Director != nil {
		set["director"] = *update.Director
	}
	if update.Year != nil {
		set["year"] = *update.Year
	}
	if update.Genres != nil {
		set["genres"] = *update.Genres
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var m mongoMovie
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMovieNotFound
		}
		return nil, fmt.Errorf("update movie: %w", err)
	}
	return m.toDomain(), nil
}

// Delete removes the movie and reports whether a document was removed. A
// malformed id simply removes nothing.
func (r *MovieRepository) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("delete movie: %w", err)
	}
	return res.DeletedCount > 0, nil
}
