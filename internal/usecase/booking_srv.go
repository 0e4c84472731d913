package usecase

import (
	"context"
	"fmt"
	"time"

	"cinebook/internal/data/entity"
	"cinebook/internal/data/repository"
	"cinebook/internal/dto/request"
	"cinebook/internal/dto/response"
	"cinebook/pkg/notify"
	"cinebook/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	GetBookings(ctx context.Context, req *request.PaginatedRequest, screeningID *string) (*response.PaginatedResponse[response.BookingResponse], error)
	GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	CreateBooking(ctx context.Context, req *request.BookingRequest) (*response.BookingResponse, error)
	UpdateBooking(ctx context.Context, bookingID string, req *request.BookingRequest) (*response.BookingResponse, error)
	CancelBooking(ctx context.Context, bookingID string) error
	DeleteBooking(ctx context.Context, bookingID string) error
}

type bookingService struct {
	repo     *repository.Repository
	notifier *notify.Notifier
	log      *zap.Logger
}

func NewBookingService(repo *repository.Repository, notifier *notify.Notifier, log *zap.Logger) BookingService {
	return &bookingService{
		repo:     repo,
		notifier: notifier,
		log:      log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) GetBookings(ctx context.Context, req *request.PaginatedRequest, screeningID *string) (*response.PaginatedResponse[response.BookingResponse], error) {
	var screeningFilter *uuid.UUID
	if screeningID != nil && *screeningID != "" {
		id, err := uuid.Parse(*screeningID)
		if err != nil {
			return nil, fmt.Errorf("invalid screening id: %w", err)
		}
		screeningFilter = &id
	}

	bookings, err := s.repo.Booking.FindAll(ctx, screeningFilter, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get bookings", zap.Error(err))
		return nil, fmt.Errorf("get bookings: %w", err)
	}

	total, err := s.repo.Booking.CountAll(ctx, screeningFilter)
	if err != nil {
		s.log.Error("Failed to count bookings", zap.Error(err))
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	items := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		seat, err := s.bookingSeat(ctx, booking)
		if err != nil {
			return nil, err
		}
		items[i] = response.NewBookingResponse(booking, seat)
	}

	resp := response.NewPaginatedResponse(items, req.Page, req.PerPage, utils.CalculateTotalPages(total, req.PerPage), total)
	return &resp, nil
}

func (s *bookingService) bookingSeat(ctx context.Context, booking *entity.Booking) (*entity.Seat, error) {
	if booking.SeatID == nil {
		return nil, nil
	}
	seat, err := s.repo.Seat.FindByID(ctx, *booking.SeatID)
	if err != nil {
		return nil, fmt.Errorf("get seat by id: %w", err)
	}
	return seat, nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking id: %w", err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking by id: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking not found")
	}

	seat, err := s.bookingSeat(ctx, booking)
	if err != nil {
		return nil, err
	}

	resp := response.NewBookingResponse(booking, seat)
	return &resp, nil
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.BookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	screening, seat, hall, err := s.resolveBookingRefs(ctx, req)
	if err != nil {
		return nil, err
	}

	if seat != nil {
		taken, err := s.repo.Booking.SeatTaken(ctx, screening.ID, seat.ID, nil)
		if err != nil {
			return nil, fmt.Errorf("check seat availability: %w", err)
		}
		if taken {
			return nil, fmt.Errorf("book seat %s: %w", seat.Label(), repository.ErrSeatTaken)
		}
	}

	hallSeats := 0
	if hall != nil {
		hallSeats = hall.TotalSeats
	}
	discount := ""
	if req.DiscountCode != nil {
		discount = *req.DiscountCode
	}
	price := CalculatePrice(screening.Price, seat, hallSeats, screening.StartTime, discount)

	now := time.Now()
	booking := &entity.Booking{
		ID:           uuid.New(),
		ScreeningID:  screening.ID,
		CustomerName: req.CustomerName,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		Status:       entity.BookingStatusPending,
		Price:        price,
		DiscountCode: req.DiscountCode,
		BookedAt:     now,
		UpdatedAt:    now,
	}
	if seat != nil {
		booking.SeatID = &seat.ID
	}
	if req.Status != "" {
		booking.Status = entity.BookingStatus(req.Status)
	}

	// The partial unique index still guards the seat if another booking
	// slips in between the check above and this insert.
	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("screening_id", screening.ID.String()),
		zap.Float64("price", price),
	)

	s.sendConfirmation(ctx, booking, screening, seat, hall)

	resp := response.NewBookingResponse(booking, seat)
	return &resp, nil
}

// sendConfirmation hands the ticket to the notifier, which mails it in
// the background. A missing movie only degrades the email content.
func (s *bookingService) sendConfirmation(ctx context.Context, booking *entity.Booking, screening *entity.Screening, seat *entity.Seat, hall *entity.Hall) {
	if s.notifier == nil || booking.Email == nil {
		return
	}

	ticket := notify.BookingTicket{
		BookingID:    booking.ID.String(),
		CustomerName: booking.CustomerName,
		Email:        *booking.Email,
		StartTime:    screening.StartTime,
		Price:        booking.Price,
	}
	if seat != nil {
		ticket.SeatLabel = seat.Label()
	}
	if hall != nil {
		ticket.HallName = hall.Name
	}

	movie, err := s.repo.Movie.FindByID(ctx, screening.MovieID)
	if err != nil {
		s.log.Warn("Failed to get movie for confirmation email",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
	} else if movie != nil {
		ticket.MovieTitle = movie.Title
	}

	s.notifier.BookingConfirmed(ticket)
}

func (s *bookingService) UpdateBooking(ctx context.Context, bookingID string, req *request.BookingRequest) (*response.BookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking id: %w", err)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking by id: %w", err)
	}
	if existing == nil {
		return nil, fmt.Errorf("booking not found")
	}

	screening, seat, hall, err := s.resolveBookingRefs(ctx, req)
	if err != nil {
		return nil, err
	}

	status := existing.Status
	if req.Status != "" {
		status = entity.BookingStatus(req.Status)
	}

	// Cancelled bookings do not hold seats, so the guard only applies
	// while the updated booking stays active.
	if seat != nil && status != entity.BookingStatusCancelled {
		taken, err := s.repo.Booking.SeatTaken(ctx, screening.ID, seat.ID, &id)
		if err != nil {
			return nil, fmt.Errorf("check seat availability: %w", err)
		}
		if taken {
			return nil, fmt.Errorf("book seat %s: %w", seat.Label(), repository.ErrSeatTaken)
		}
	}

	hallSeats := 0
	if hall != nil {
		hallSeats = hall.TotalSeats
	}
	discount := ""
	if req.DiscountCode != nil {
		discount = *req.DiscountCode
	}

	booking := &entity.Booking{
		ID:           id,
		ScreeningID:  screening.ID,
		CustomerName: req.CustomerName,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		Status:       status,
		Price:        CalculatePrice(screening.Price, seat, hallSeats, screening.StartTime, discount),
		DiscountCode: req.DiscountCode,
		BookedAt:     existing.BookedAt,
		UpdatedAt:    time.Now(),
	}
	if seat != nil {
		booking.SeatID = &seat.ID
	}

	if err := s.repo.Booking.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}

	s.log.Info("Booking updated", zap.String("booking_id", bookingID))

	resp := response.NewBookingResponse(booking, seat)
	return &resp, nil
}

// resolveBookingRefs loads and validates the screening, the optional
// seat and the seat's hall. The seat must belong to the screening's hall
// and still be in service.
func (s *bookingService) resolveBookingRefs(ctx context.Context, req *request.BookingRequest) (*entity.Screening, *entity.Seat, *entity.Hall, error) {
	screeningID, err := uuid.Parse(req.ScreeningID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("invalid screening id: %w", err)
	}

	screening, err := s.repo.Screening.FindByID(ctx, screeningID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("get screening by id: %w", err)
	}
	if screening == nil {
		return nil, nil, nil, fmt.Errorf("screening not found")
	}
	if screening.Status == entity.ScreeningStatusCancelled {
		return nil, nil, nil, fmt.Errorf("invalid booking: screening is cancelled")
	}

	var seat *entity.Seat
	if req.SeatID != nil && *req.SeatID != "" {
		seatID, err := uuid.Parse(*req.SeatID)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("invalid seat id: %w", err)
		}

		seat, err = s.repo.Seat.FindByID(ctx, seatID)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("get seat by id: %w", err)
		}
		if seat == nil {
			return nil, nil, nil, fmt.Errorf("seat not found")
		}
		if seat.HallID != screening.HallID {
			return nil, nil, nil, fmt.Errorf("invalid seat: seat %s is not in the screening's hall", seat.Label())
		}
		if !seat.IsActive {
			return nil, nil, nil, fmt.Errorf("invalid seat: seat %s is out of service", seat.Label())
		}
	}

	hall, err := s.repo.Hall.FindByID(ctx, screening.HallID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("get hall by id: %w", err)
	}

	return screening, seat, hall, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, bookingID string) error {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return fmt.Errorf("invalid booking id: %w", err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get booking by id: %w", err)
	}
	if booking == nil {
		return fmt.Errorf("booking not found")
	}

	// Cancelling releases the seat for rebooking; the row stays for the
	// admin aggregates.
	if err := s.repo.Booking.UpdateStatus(ctx, id, entity.BookingStatusCancelled); err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}

	s.log.Info("Booking cancelled", zap.String("booking_id", bookingID))
	return nil
}

func (s *bookingService) DeleteBooking(ctx context.Context, bookingID string) error {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return fmt.Errorf("invalid booking id: %w", err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get booking by id: %w", err)
	}
	if booking == nil {
		return fmt.Errorf("booking not found")
	}

	if err := s.repo.Booking.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}

	return nil
}
