package handler

import (
	"time"

	"github.com/moviehub/movie-api/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type createMovieRequest struct {
	Title       string   `json:"title"       validate:"required,max=256"`
	Description string   `json:"description" validate:"required"`
	Rating      *float64 `json:"rating"      validate:"required,gte=0,lte=10"`
	Director    string   `json:"director"`
	Year        int      `json:"year"        validate:"omitempty,gte=1888"`
	Genres      []string `json:"genres"`
}

// updateMovieRequest is the field mask: nil means "leave unchanged".
type updateMovieRequest struct {
	Title       *string   `json:"title"       validate:"omitempty,max=256"`
	Description *string   `json:"description"`
	Rating      *float64  `json:"rating"      validate:"omitempty,gte=0,lte=10"`
	Director    *string   `json:"director"`
	Year        *int      `json:"year"        validate:"omitempty,gte=1888"`
	Genres      *[]string `json:"genres"`
}

// Response-only types owned by the transport layer. These are intentionally
// separate from domain types so the JSON contract is not coupled to internal
// service changes.

type movieResponse struct {
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

func toMovieResponse(m *domain.Movie) movieResponse {
	return movieResponse{
		ID:          m.ID,
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

type paginationResponse struct {
	Total  int64 `json:"total"`
	Offset int64 `json:"offset"`
	Limit  int64 `json:"limit"`
}

type listMoviesResponse struct {
	Data       []movieResponse    `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

type deleteMovieResponse struct {
	Message string `json:"message"`
}
