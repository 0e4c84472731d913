package usecase

import (
	"context"
	"fmt"
	"time"

	"cinebook/internal/data/entity"
	"cinebook/internal/data/repository"
	"cinebook/internal/dto/request"
	"cinebook/internal/dto/response"
	"cinebook/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SeatService interface {
	GetSeatsByHall(ctx context.Context, hallID string) ([]response.SeatResponse, error)
	GetSeatByID(ctx context.Context, seatID string) (*response.SeatResponse, error)
	CreateSeat(ctx context.Context, req *request.SeatRequest) (*response.SeatResponse, error)
	UpdateSeat(ctx context.Context, seatID string, req *request.SeatRequest) (*response.SeatResponse, error)
	DeleteSeat(ctx context.Context, seatID string) error
}

type seatService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewSeatService(repo *repository.Repository, log *zap.Logger) SeatService {
	return &seatService{
		repo: repo,
		log:  log.With(zap.String("service", "seat")),
	}
}

func (s *seatService) GetSeatsByHall(ctx context.Context, hallID string) ([]response.SeatResponse, error) {
	id, err := uuid.Parse(hallID)
	if err != nil {
		return nil, fmt.Errorf("invalid hall id: %w", err)
	}

	hall, err := s.repo.Hall.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get hall by id: %w", err)
	}
	if hall == nil {
		return nil, fmt.Errorf("hall not found")
	}

	seats, err := s.repo.Seat.FindByHallID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get seats for hall",
			zap.Error(err),
			zap.String("hall_id", hallID),
		)
		return nil, fmt.Errorf("get seats for hall: %w", err)
	}

	items := make([]response.SeatResponse, len(seats))
	for i, seat := range seats {
		items[i] = response.NewSeatResponse(seat)
	}
	return items, nil
}

func (s *seatService) GetSeatByID(ctx context.Context, seatID string) (*response.SeatResponse, error) {
	id, err := uuid.Parse(seatID)
	if err != nil {
		return nil, fmt.Errorf("invalid seat id: %w", err)
	}

	seat, err := s.repo.Seat.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get seat by id: %w", err)
	}
	if seat == nil {
		return nil, fmt.Errorf("seat not found")
	}

	resp := response.NewSeatResponse(seat)
	return &resp, nil
}

func (s *seatService) CreateSeat(ctx context.Context, req *request.SeatRequest) (*response.SeatResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create seat validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	hallID, err := uuid.Parse(req.HallID)
	if err != nil {
		return nil, fmt.Errorf("invalid hall id: %w", err)
	}

	hall, err := s.repo.Hall.FindByID(ctx, hallID)
	if err != nil {
		return nil, fmt.Errorf("get hall by id: %w", err)
	}
	if hall == nil {
		return nil, fmt.Errorf("hall not found")
	}

	now := time.Now()
	seat := &entity.Seat{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		HallID:     hallID,
		SeatRow:    req.SeatRow,
		SeatNumber: req.SeatNumber,
		SeatType:   entity.SeatType(req.SeatType),
		IsActive:   true,
	}
	if req.IsActive != nil {
		seat.IsActive = *req.IsActive
	}

	if err := s.repo.Seat.Create(ctx, seat); err != nil {
		s.log.Warn("Failed to create seat",
			zap.Error(err),
			zap.String("hall_id", req.HallID),
			zap.String("label", seat.Label()),
		)
		return nil, fmt.Errorf("create seat: %w", err)
	}

	s.log.Info("Seat created",
		zap.String("seat_id", seat.ID.String()),
		zap.String("hall_id", req.HallID),
		zap.String("label", seat.Label()),
	)

	resp := response.NewSeatResponse(seat)
	return &resp, nil
}

func (s *seatService) UpdateSeat(ctx context.Context, seatID string, req *request.SeatRequest) (*response.SeatResponse, error) {
	id, err := uuid.Parse(seatID)
	if err != nil {
		return nil, fmt.Errorf("invalid seat id: %w", err)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update seat validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	seat, err := s.repo.Seat.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get seat by id: %w", err)
	}
	if seat == nil {
		return nil, fmt.Errorf("seat not found")
	}

	hallID, err := uuid.Parse(req.HallID)
	if err != nil {
		return nil, fmt.Errorf("invalid hall id: %w", err)
	}
	if hallID != seat.HallID {
		hall, err := s.repo.Hall.FindByID(ctx, hallID)
		if err != nil {
			return nil, fmt.Errorf("get hall by id: %w", err)
		}
		if hall == nil {
			return nil, fmt.Errorf("hall not found")
		}
	}

	seat.HallID = hallID
	seat.SeatRow = req.SeatRow
	seat.SeatNumber = req.SeatNumber
	seat.SeatType = entity.SeatType(req.SeatType)
	if req.IsActive != nil {
		seat.IsActive = *req.IsActive
	}
	seat.UpdatedAt = time.Now()

	if err := s.repo.Seat.Update(ctx, seat); err != nil {
		return nil, fmt.Errorf("update seat: %w", err)
	}

	s.log.Info("Seat updated", zap.String("seat_id", seatID))

	resp := response.NewSeatResponse(seat)
	return &resp, nil
}

func (s *seatService) DeleteSeat(ctx context.Context, seatID string) error {
	id, err := uuid.Parse(seatID)
	if err != nil {
		return fmt.Errorf("invalid seat id: %w", err)
	}

	seat, err := s.repo.Seat.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get seat by id: %w", err)
	}
	if seat == nil {
		return fmt.Errorf("seat not found")
	}

	// Bookings referencing this seat keep their rows, seat_id goes null.
	if err := s.repo.Seat.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete seat: %w", err)
	}

	return nil
}
