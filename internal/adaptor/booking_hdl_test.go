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

type stubBookingService struct {
	usecase.BookingService
	create func(ctx context.Context, req *request.BookingRequest) (*response.BookingResponse, error)
	cancel func(ctx context.Context, id string) error
}

func (s *stubBookingService) CreateBooking(ctx context.Context, req *request.BookingRequest) (*response.BookingResponse, error) {
	return s.create(ctx, req)
}

func (s *stubBookingService) CancelBooking(ctx context.Context, id string) error {
	return s.cancel(ctx, id)
}

func bookingRouter(service usecase.BookingService) *chi.Mux {
	handler := NewBookingHandler(service, zap.NewNop())
	r := chi.NewRouter()
	r.Post("/api/bookings", handler.CreateBooking)
	r.Post("/api/bookings/{id}/cancel", handler.CancelBooking)
	return r
}

func TestCreateBookingSeatTaken(t *testing.T) {
	service := &stubBookingService{
		create: func(ctx context.Context, req *request.BookingRequest) (*response.BookingResponse, error) {
			return nil, fmt.Errorf("book seat A1: %w", repository.ErrSeatTaken)
		},
	}

	body := `{"screening_id":"0c3b4b1e-5df6-4d76-b5c6-0e9a3a3b2f10","customer_name":"Ada"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	bookingRouter(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Status)
	assert.Contains(t, envelope.Message, "seat already booked")
}

func TestCreateBookingSuccess(t *testing.T) {
	service := &stubBookingService{
		create: func(ctx context.Context, req *request.BookingRequest) (*response.BookingResponse, error) {
			return &response.BookingResponse{CustomerName: req.CustomerName, Price: 850}, nil
		},
	}

	body := `{"screening_id":"0c3b4b1e-5df6-4d76-b5c6-0e9a3a3b2f10","customer_name":"Ada"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	bookingRouter(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Status)
}

func TestCancelBooking(t *testing.T) {
	var cancelled string
	service := &stubBookingService{
		cancel: func(ctx context.Context, id string) error {
			cancelled = id
			return nil
		},
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/0c3b4b1e-5df6-4d76-b5c6-0e9a3a3b2f10/cancel", nil)
	bookingRouter(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "0c3b4b1e-5df6-4d76-b5c6-0e9a3a3b2f10", cancelled)
}
