package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/moviehub/movie-api/internal/core/domain"
	"github.com/moviehub/movie-api/internal/core/ports"
)

// MovieHandler handles HTTP requests for movie operations. Domain errors are
// returned as-is and mapped to HTTP statuses by the central error handler.
type MovieHandler struct {
	service ports.MovieService
}

func NewMovieHandler(service ports.MovieService) *MovieHandler {
	return &MovieHandler{service: service}
}

// Create handles POST /v1/movies.
//
// @Summary      Create a new movie
// @Tags         movies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createMovieRequest  true  "Movie details"
// @Success      201   {object}  movieResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/movies [post]
func (h *MovieHandler) Create(c echo.Context) error {
	username, err := ctxUsername(c)
	if err != nil {
		return err
	}

	var req createMovieRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	movie, err := h.service.Create(c.Request().Context(), ports.CreateMovieInput{
		Title:       req.Title,
		Description: req.Description,
		Rating:      *req.Rating,
		Director:    req.Director,
		Year:        req.Year,
		Genres:      req.Genres,
		Actor:       username,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toMovieResponse(movie))
}

// Get handles GET /v1/movies/:id.
//
// @Summary      Get a movie by id
// @Tags         movies
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Opaque movie id"
// @Success      200  {object}  movieResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/movies/{id} [get]
func (h *MovieHandler) Get(c echo.Context) error {
	if _, err := ctxUsername(c); err != nil {
		return err
	}

	movie, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMovieResponse(movie))
}

// List handles GET /v1/movies.
//
// @Summary      List movies in insertion order
// @Tags         movies
// @Produce      json
// @Security     BearerAuth
// @Param        offset  query     int  false  "Number of movies to skip (default 0)"
// @Param        limit   query     int  false  "Page size (default 10, max 100)"
// @Success      200     {object}  listMoviesResponse
// @Failure      400     {object}  errorResponse
// @Failure      401     {object}  errorResponse
// @Router       /v1/movies [get]
func (h *MovieHandler) List(c echo.Context) error {
	if _, err := ctxUsername(c); err != nil {
		return err
	}

	offset, err := queryInt64(c, "offset")
	if err != nil {
		return err
	}
	limit, err := queryInt64(c, "limit")
	if err != nil {
		return err
	}

	result, err := h.service.List(c.Request().Context(), ports.ListMoviesInput{
		Offset: offset,
		Limit:  limit,
	})
	if err != nil {
		return err
	}

	data := make([]movieResponse, 0, len(result.Items))
	for _, m := range result.Items {
		data = append(data, toMovieResponse(m))
	}

	return c.JSON(http.StatusOK, listMoviesResponse{
		Data: data,
		Pagination: paginationResponse{
			Total:  result.Total,
			Offset: result.Offset,
			Limit:  result.Limit,
		},
	})
}

// Update handles PATCH /v1/movies/:id. Only fields present in the body are
// applied; omitted fields are left untouched.
//
// @Summary      Partially update a movie
// @Tags         movies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Opaque movie id"
// @Param        body  body      updateMovieRequest  true  "Fields to update"
// @Success      200   {object}  movieResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/movies/{id} [patch]
func (h *MovieHandler) Update(c echo.Context) error {
	username, err := ctxUsername(c)
	if err != nil {
		return err
	}

	var req updateMovieRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	movie, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateMovieInput{
		Title:       req.Title,
		Description: req.Description,
		Rating:      req.Rating,
		Director:    req.Director,
		Year:        req.Year,
		Genres:      req.Genres,
		Actor:       username,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toMovieResponse(movie))
}

// Delete handles DELETE /v1/movies/:id.
//
// @Summary      Delete a movie
// @Tags         movies
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Opaque movie id"
// @Success      200  {object}  deleteMovieResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/movies/{id} [delete]
func (h *MovieHandler) Delete(c echo.Context) error {
	username, err := ctxUsername(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), username); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deleteMovieResponse{Message: "movie deleted"})
}

// queryInt64 parses an optional non-negative integer query parameter.
// A missing parameter yields 0; garbage yields 400.
func queryInt64(c echo.Context, name string) (int64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" must be an integer")
	}
	if v < 0 {
		return 0, domain.ErrInvalidArgument
	}
	return v, nil
}
