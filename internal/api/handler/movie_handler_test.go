package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/moviehub/movie-api/internal/core/domain"
	"github.com/moviehub/movie-api/internal/core/ports"
)

type stubMovieService struct {
	createFn func(ctx context.Context, input ports.CreateMovieInput) (*domain.Movie, error)
	getFn    func(ctx context.Context, id string) (*domain.Movie, error)
	listFn   func(ctx context.Context, input ports.ListMoviesInput) (*ports.ListMoviesResult, error)
	updateFn func(ctx context.Context, id string, input ports.UpdateMovieInput) (*domain.Movie, error)
	deleteFn func(ctx context.Context, id string, actor string) error
}

func (s *stubMovieService) Create(ctx context.Context, input ports.CreateMovieInput) (*domain.Movie, error) {
	return s.createFn(ctx, input)
}

func (s *stubMovieService) Get(ctx context.Context, id string) (*domain.Movie, error) {
	return s.getFn(ctx, id)
}

func (s *stubMovieService) List(ctx context.Context, input ports.ListMoviesInput) (*ports.ListMoviesResult, error) {
	return s.listFn(ctx, input)
}

func (s *stubMovieService) Update(ctx context.Context, id string, input ports.UpdateMovieInput) (*domain.Movie, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubMovieService) Delete(ctx context.Context, id string, actor string) error {
	return s.deleteFn(ctx, id, actor)
}

func authedContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder) echo.Context {
	c := e.NewContext(req, rec)
	c.Set("username", "alice")
	return c
}

func TestMovieHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubMovieService{
		createFn: func(ctx context.Context, input ports.CreateMovieInput) (*domain.Movie, error) {
			if input.Title != "Dune" || input.Rating != 8.5 || input.Actor != "alice" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Movie{
				ID:          "665f1c2a9d3e4b0001a1b2c3",
				Title:       input.Title,
				Description: input.Description,
				Rating:      input.Rating,
			}, nil
		},
	}
	handler := NewMovieHandler(stub)

	body := strings.NewReader(`{"title":"Dune","description":"Spice must flow","rating":8.5}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/movies", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "665f1c2a9d3e4b0001a1b2c3" {
		t.Fatalf("expected non-empty id in response, got %+v", resp)
	}
}

func TestMovieHandler_Create_MissingFields(t *testing.T) {
	e := newTestEcho()
	stub := &stubMovieService{
		createFn: func(ctx context.Context, input ports.CreateMovieInput) (*domain.Movie, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewMovieHandler(stub)

	body := strings.NewReader(`{"title":"Dune"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/movies", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec)

	err := handler.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestMovieHandler_Create_Unauthenticated(t *testing.T) {
	e := newTestEcho()
	handler := NewMovieHandler(&stubMovieService{})

	req := httptest.NewRequest(http.MethodPost, "/v1/movies", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec) // no username in context

	err := handler.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestMovieHandler_Get_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubMovieService{
		getFn: func(ctx context.Context, id string) (*domain.Movie, error) {
			return nil, domain.ErrMovieNotFound
		},
	}
	handler := NewMovieHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/v1/movies/does-not-exist", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec)
	c.SetParamNames("id")
	c.SetParamValues("does-not-exist")

	if err := handler.Get(c); !errors.Is(err, domain.ErrMovieNotFound) {
		t.Fatalf("expected ErrMovieNotFound to propagate, got %v", err)
	}
}

func TestMovieHandler_List_PassesPagination(t *testing.T) {
	e := newTestEcho()
	stub := &stubMovieService{
		listFn: func(ctx context.Context, input ports.ListMoviesInput) (*ports.ListMoviesResult, error) {
			if input.Offset != 5 || input.Limit != 2 {
				t.Fatalf("unexpected pagination: %+v", input)
			}
			return &ports.ListMoviesResult{
				Items:  []*domain.Movie{{ID: "a", Title: "one"}, {ID: "b", Title: "two"}},
				Total:  10,
				Offset: 5,
				Limit:  2,
			}, nil
		},
	}
	handler := NewMovieHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/v1/movies?offset=5&limit=2", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Data       []map[string]any `json:"data"`
		Pagination map[string]any   `json:"pagination"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Data) != 2 {
		t.Fatalf("expected 2 items, got %d", len(resp.Data))
	}
	if resp.Pagination["total"] != float64(10) {
		t.Fatalf("unexpected pagination: %+v", resp.Pagination)
	}
}

func TestMovieHandler_List_BadQuery(t *testing.T) {
	e := newTestEcho()
	handler := NewMovieHandler(&stubMovieService{})

	req := httptest.NewRequest(http.MethodGet, "/v1/movies?limit=banana", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec)

	err := handler.List(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestMovieHandler_List_NegativeOffset(t *testing.T) {
	e := newTestEcho()
	handler := NewMovieHandler(&stubMovieService{})

	req := httptest.NewRequest(http.MethodGet, "/v1/movies?offset=-1", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec)

	if err := handler.List(c); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestMovieHandler_Update_MaskOnlyProvidedFields(t *testing.T) {
	e := newTestEcho()
	stub := &stubMovieService{
		updateFn: func(ctx context.Context, id string, input ports.UpdateMovieInput) (*domain.Movie, error) {
			if id != "abc123" {
				t.Fatalf("unexpected id: %s", id)
			}
			if input.Rating == nil || *input.Rating != 9.0 {
				t.Fatalf("expected rating in mask, got %+v", input)
			}
			if input.Title != nil || input.Description != nil {
				t.Fatalf("omitted fields must be nil in the mask: %+v", input)
			}
			return &domain.Movie{ID: id, Title: "Dune", Rating: 9.0}, nil
		},
	}
	handler := NewMovieHandler(stub)

	body := strings.NewReader(`{"rating":9.0}`)
	req := httptest.NewRequest(http.MethodPatch, "/v1/movies/abc123", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc123")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestMovieHandler_Delete(t *testing.T) {
	e := newTestEcho()
	deleted := ""
	stub := &stubMovieService{
		deleteFn: func(ctx context.Context, id string, actor string) error {
			deleted = id
			if actor != "alice" {
				t.Fatalf("unexpected actor: %s", actor)
			}
			return nil
		},
	}
	handler := NewMovieHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/v1/movies/abc123", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc123")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if deleted != "abc123" {
		t.Fatalf("expected delete of abc123, got %q", deleted)
	}
}

func TestMovieHandler_Delete_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubMovieService{
		deleteFn: func(ctx context.Context, id string, actor string) error {
			return domain.ErrMovieNotFound
		},
	}
	handler := NewMovieHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/v1/movies/missing", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := handler.Delete(c); !errors.Is(err, domain.ErrMovieNotFound) {
		t.Fatalf("expected ErrMovieNotFound to propagate, got %v", err)
	}
}
