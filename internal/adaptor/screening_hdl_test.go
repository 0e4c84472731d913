package adaptor

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"cinebook/internal/data/repository"
	"cinebook/internal/dto/request"
	"cinebook/internal/dto/response"
	"cinebook/internal/usecase"

	"go.uber.org/zap"
)

type stubScreeningService struct {
	usecase.ScreeningService
	create         func(ctx context.Context, req *request.ScreeningRequest) (*response.ScreeningResponse, error)
	availableSeats func(ctx context.Context, id string) ([]response.SeatResponse, error)
}

func (s *stubScreeningService) CreateScreening(ctx context.Context, req *request.ScreeningRequest) (*response.ScreeningResponse, error) {
	return s.create(ctx, req)
}

func (s *stubScreeningService) GetAvailableSeats(ctx context.Context, id string) ([]response.SeatResponse, error) {
	return s.availableSeats(ctx, id)
}

func screeningRouter(service usecase.ScreeningService) *chi.Mux {
	handler := NewScreeningHandler(service, zap.NewNop())
	r := chi.NewRouter()
	r.Post("/api/screenings", handler.CreateScreening)
	r.Get("/api/screenings/{id}/available-seats", handler.GetAvailableSeats)
	return r
}

func TestCreateScreeningConflict(t *testing.T) {
	service := &stubScreeningService{
		create: func(ctx context.Context, req *request.ScreeningRequest) (*response.ScreeningResponse, error) {
			return nil, fmt.Errorf("create screening: %w with screening(s) abc", repository.ErrSchedulingConflict)
		},
	}

	body := `{"movie_id":"0c3b4b1e-5df6-4d76-b5c6-0e9a3a3b2f10","hall_id":"7f3b4b1e-5df6-4d76-b5c6-0e9a3a3b2f10","start_time":"2026-03-14T14:00:00Z","price":850}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/screenings", strings.NewReader(body))
	screeningRouter(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Status)
	assert.Contains(t, envelope.Message, "scheduling conflict")
}

func TestGetAvailableSeats(t *testing.T) {
	service := &stubScreeningService{
		availableSeats: func(ctx context.Context, id string) ([]response.SeatResponse, error) {
			return []response.SeatResponse{{SeatRow: "A", SeatNumber: 1, Label: "A1"}}, nil
		},
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/screenings/0c3b4b1e-5df6-4d76-b5c6-0e9a3a3b2f10/available-seats", nil)
	screeningRouter(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Status)
}

func TestGetAvailableSeatsScreeningMissing(t *testing.T) {
	service := &stubScreeningService{
		availableSeats: func(ctx context.Context, id string) ([]response.SeatResponse, error) {
			return nil, fmt.Errorf("screening not found")
		},
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/screenings/0c3b4b1e-5df6-4d76-b5c6-0e9a3a3b2f10/available-seats", nil)
	screeningRouter(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
