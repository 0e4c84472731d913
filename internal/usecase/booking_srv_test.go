package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"cinebook/internal/data/entity"
	"cinebook/internal/data/repository"
	"cinebook/internal/dto/request"
)

// The stubs embed the repository interfaces and override only what each
// test needs; a call to anything else panics and fails the test loudly.

type stubScreeningRepo struct {
	repository.ScreeningRepository
	findByID func(ctx context.Context, id uuid.UUID) (*entity.Screening, error)
}

func (s *stubScreeningRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Screening, error) {
	return s.findByID(ctx, id)
}

type stubSeatRepo struct {
	repository.SeatRepository
	findByID func(ctx context.Context, id uuid.UUID) (*entity.Seat, error)
}

func (s *stubSeatRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Seat, error) {
	return s.findByID(ctx, id)
}

type stubHallRepo struct {
	repository.HallRepository
	findByID func(ctx context.Context, id uuid.UUID) (*entity.Hall, error)
}

func (s *stubHallRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Hall, error) {
	return s.findByID(ctx, id)
}

type stubMovieRepo struct {
	repository.MovieRepository
	findByID func(ctx context.Context, id uuid.UUID) (*entity.Movie, error)
}

func (s *stubMovieRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	return s.findByID(ctx, id)
}

type stubBookingRepo struct {
	repository.BookingRepository
	create    func(ctx context.Context, booking *entity.Booking) error
	seatTaken func(ctx context.Context, screeningID, seatID uuid.UUID, excludeID *uuid.UUID) (bool, error)
}

func (s *stubBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	return s.create(ctx, booking)
}

func (s *stubBookingRepo) SeatTaken(ctx context.Context, screeningID, seatID uuid.UUID, excludeID *uuid.UUID) (bool, error) {
	return s.seatTaken(ctx, screeningID, seatID, excludeID)
}

type bookingFixture struct {
	screening *entity.Screening
	seat      *entity.Seat
	hall      *entity.Hall
	taken     bool
	created   *entity.Booking
}

func newBookingFixture() *bookingFixture {
	hallID := uuid.New()
	return &bookingFixture{
		screening: &entity.Screening{
			Base:      entity.Base{ID: uuid.New()},
			MovieID:   uuid.New(),
			HallID:    hallID,
			StartTime: time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC),
			Price:     850,
			Status:    entity.ScreeningStatusScheduled,
		},
		seat: &entity.Seat{
			Base:       entity.Base{ID: uuid.New()},
			HallID:     hallID,
			SeatRow:    "A",
			SeatNumber: 1,
			SeatType:   entity.SeatTypeVIP,
			IsActive:   true,
		},
		hall: &entity.Hall{
			Base:       entity.Base{ID: hallID},
			Name:       "Hall 1",
			TotalSeats: 150,
		},
	}
}

func (f *bookingFixture) service() BookingService {
	repo := &repository.Repository{
		Screening: &stubScreeningRepo{findByID: func(ctx context.Context, id uuid.UUID) (*entity.Screening, error) {
			if id == f.screening.ID {
				return f.screening, nil
			}
			return nil, nil
		}},
		Seat: &stubSeatRepo{findByID: func(ctx context.Context, id uuid.UUID) (*entity.Seat, error) {
			if f.seat != nil && id == f.seat.ID {
				return f.seat, nil
			}
			return nil, nil
		}},
		Hall: &stubHallRepo{findByID: func(ctx context.Context, id uuid.UUID) (*entity.Hall, error) {
			if id == f.hall.ID {
				return f.hall, nil
			}
			return nil, nil
		}},
		Movie: &stubMovieRepo{findByID: func(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
			return &entity.Movie{Base: entity.Base{ID: id}, Title: "Arrival", DurationMinutes: 116}, nil
		}},
		Booking: &stubBookingRepo{
			create: func(ctx context.Context, booking *entity.Booking) error {
				f.created = booking
				return nil
			},
			seatTaken: func(ctx context.Context, screeningID, seatID uuid.UUID, excludeID *uuid.UUID) (bool, error) {
				return f.taken, nil
			},
		},
	}
	return NewBookingService(repo, nil, zap.NewNop())
}

func (f *bookingFixture) request() *request.BookingRequest {
	seatID := f.seat.ID.String()
	return &request.BookingRequest{
		ScreeningID:  f.screening.ID.String(),
		SeatID:       &seatID,
		CustomerName: "Ada",
	}
}

func TestCreateBookingComputesPrice(t *testing.T) {
	f := newBookingFixture()

	resp, err := f.service().CreateBooking(context.Background(), f.request())
	require.NoError(t, err)

	// 850 base, VIP x1.5, 15:00 surcharge, 150-seat hall x1.1.
	assert.Equal(t, 1512.50, resp.Price)
	assert.Equal(t, "A1", resp.SeatLabel)
	require.NotNil(t, f.created)
	assert.Equal(t, entity.BookingStatusPending, f.created.Status)
}

func TestCreateBookingSeatTaken(t *testing.T) {
	f := newBookingFixture()
	f.taken = true

	_, err := f.service().CreateBooking(context.Background(), f.request())
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrSeatTaken)
	assert.Nil(t, f.created)
}

func TestCreateBookingSeatInWrongHall(t *testing.T) {
	f := newBookingFixture()
	f.seat.HallID = uuid.New()

	_, err := f.service().CreateBooking(context.Background(), f.request())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not in the screening's hall")
}

func TestCreateBookingInactiveSeat(t *testing.T) {
	f := newBookingFixture()
	f.seat.IsActive = false

	_, err := f.service().CreateBooking(context.Background(), f.request())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of service")
}

func TestCreateBookingCancelledScreening(t *testing.T) {
	f := newBookingFixture()
	f.screening.Status = entity.ScreeningStatusCancelled

	_, err := f.service().CreateBooking(context.Background(), f.request())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cancelled")
}

func TestCreateBookingWithoutSeat(t *testing.T) {
	f := newBookingFixture()

	req := f.request()
	req.SeatID = nil
	req.DiscountCode = strPtr("student10")

	resp, err := f.service().CreateBooking(context.Background(), req)
	require.NoError(t, err)

	// 850 base, +100 surcharge, then the student discount. No seat
	// factors apply.
	assert.Equal(t, 855.00, resp.Price)
	assert.Empty(t, resp.SeatLabel)
}

func TestCreateBookingUnknownScreening(t *testing.T) {
	f := newBookingFixture()

	req := f.request()
	req.ScreeningID = uuid.New().String()

	_, err := f.service().CreateBooking(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "screening not found")
}

func strPtr(s string) *string { return &s }
