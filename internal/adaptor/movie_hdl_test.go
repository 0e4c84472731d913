package adaptor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinebook/internal/dto/request"
	"cinebook/internal/dto/response"
	"cinebook/internal/usecase"
	"cinebook/pkg/utils"

	"go.uber.org/zap"
)

// stubMovieService overrides only the methods a test exercises; the
// embedded interface panics on anything unexpected.
type stubMovieService struct {
	usecase.MovieService
	getByID func(ctx context.Context, id string) (*response.MovieResponse, error)
	create  func(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error)
}

func (s *stubMovieService) GetMovieByID(ctx context.Context, id string) (*response.MovieResponse, error) {
	return s.getByID(ctx, id)
}

func (s *stubMovieService) CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
	return s.create(ctx, req)
}

func movieRouter(service usecase.MovieService) *chi.Mux {
	handler := NewMovieHandler(service, zap.NewNop())
	r := chi.NewRouter()
	r.Get("/api/movies/{id}", handler.GetMovieByID)
	r.Post("/api/movies", handler.CreateMovie)
	return r
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) utils.Response {
	t.Helper()
	var envelope utils.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	return envelope
}

func TestGetMovieByIDNotFound(t *testing.T) {
	service := &stubMovieService{
		getByID: func(ctx context.Context, id string) (*response.MovieResponse, error) {
			return nil, fmt.Errorf("movie not found")
		},
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/movies/0c3b4b1e-5df6-4d76-b5c6-0e9a3a3b2f10", nil)
	movieRouter(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Status)
	assert.Contains(t, envelope.Message, "not found")
}

func TestCreateMovie(t *testing.T) {
	service := &stubMovieService{
		create: func(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
			return &response.MovieResponse{Title: req.Title}, nil
		},
	}

	body := `{"title":"Arrival","duration_minutes":116,"rating":"PG-13"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/movies", strings.NewReader(body))
	movieRouter(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Status)
}

func TestCreateMovieInvalidBody(t *testing.T) {
	service := &stubMovieService{
		create: func(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
			t.Fatal("service should not be called")
			return nil, nil
		},
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/movies", strings.NewReader("{not json"))
	movieRouter(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateMovieValidationFailure(t *testing.T) {
	service := &stubMovieService{
		create: func(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
			return nil, fmt.Errorf("validation failed: Title: This field is required")
		},
	}

	body := `{"rating":"G"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/movies", strings.NewReader(body))
	movieRouter(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
