package domain

import (
	"errors"
	"time"
)

var ErrMovieNotFound = errors.New("movie not found")

// Movie is the core aggregate. ID is assigned by the store at insertion time
// and is opaque to every layer above the repository.
type Movie struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Rating      float64   `json:"rating"`
	Director    string    `json:"director,omitempty"`
	Year        int       `json:"year,omitempty"`
	Genres      []string  `json:"genres,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MovieUpdate is the field mask for partial updates. Only non-nil fields are
// applied; everything else is left untouched by the store.
type MovieUpdate struct {
	Title       *string
	Description *string
	Rating      *float64
	Director    *string
	Year        *int
	Genres      *[]string
}

// IsEmpty reports whether the mask carries no fields at all.
func (u MovieUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Rating == nil &&
		u.Director == nil && u.Year == nil && u.Genres == nil
}

// FieldNames returns the names of the fields present in the mask.
func (u MovieUpdate) FieldNames() []string {
	var fields []string
	if u.Title != nil {
		fields = append(fields, "title")
	}
	if u.Description != nil {
		fields = append(fields, "description")
	}
	if u.Rating != nil {
		fields = append(fields, "rating")
	}
	if u.Director != nil {
		fields = append(fields, "director")
	}
	if u.Year != nil {
		fields = append(fields, "year")
	}
	if u.Genres != nil {
		fields = append(fields, "genres")
	}
	return fields
}
