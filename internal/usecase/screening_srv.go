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

type ScreeningService interface {
	GetScreenings(ctx context.Context, req *request.PaginatedRequest, movieID *string) (*response.PaginatedResponse[response.ScreeningResponse], error)
	GetScreeningByID(ctx context.Context, screeningID string) (*response.ScreeningResponse, error)
	CreateScreening(ctx context.Context, req *request.ScreeningRequest) (*response.ScreeningResponse, error)
	UpdateScreening(ctx context.Context, screeningID string, req *request.ScreeningRequest) (*response.ScreeningResponse, error)
	CancelScreening(ctx context.Context, screeningID string) error
	DeleteScreening(ctx context.Context, screeningID string) error
	GetAvailableSeats(ctx context.Context, screeningID string) ([]response.SeatResponse, error)
}

type screeningService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewScreeningService(repo *repository.Repository, log *zap.Logger) ScreeningService {
	return &screeningService{
		repo: repo,
		log:  log.With(zap.String("service", "screening")),
	}
}

func (s *screeningService) GetScreenings(ctx context.Context, req *request.PaginatedRequest, movieID *string) (*response.PaginatedResponse[response.ScreeningResponse], error) {
	var movieFilter *uuid.UUID
	if movieID != nil && *movieID != "" {
		id, err := uuid.Parse(*movieID)
		if err != nil {
			return nil, fmt.Errorf("invalid movie id: %w", err)
		}
		movieFilter = &id
	}

	screenings, err := s.repo.Screening.FindAll(ctx, movieFilter, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get screenings", zap.Error(err))
		return nil, fmt.Errorf("get screenings: %w", err)
	}

	total, err := s.repo.Screening.CountAll(ctx, movieFilter)
	if err != nil {
		s.log.Error("Failed to count screenings", zap.Error(err))
		return nil, fmt.Errorf("count screenings: %w", err)
	}

	// Screenings on one page tend to share movies and halls, so the
	// lookups are memoized per request.
	movies := make(map[uuid.UUID]*entity.Movie)
	halls := make(map[uuid.UUID]*entity.Hall)

	items := make([]response.ScreeningResponse, len(screenings))
	for i, screening := range screenings {
		movie, hall, err := s.movieAndHall(ctx, screening, movies, halls)
		if err != nil {
			return nil, err
		}
		items[i] = response.NewScreeningResponse(screening, movie, hall)
	}

	resp := response.NewPaginatedResponse(items, req.Page, req.PerPage, utils.CalculateTotalPages(total, req.PerPage), total)
	return &resp, nil
}

func (s *screeningService) movieAndHall(ctx context.Context, screening *entity.Screening, movies map[uuid.UUID]*entity.Movie, halls map[uuid.UUID]*entity.Hall) (*entity.Movie, *entity.Hall, error) {
	movie, ok := movies[screening.MovieID]
	if !ok {
		var err error
		movie, err = s.repo.Movie.FindByID(ctx, screening.MovieID)
		if err != nil {
			return nil, nil, fmt.Errorf("get movie by id: %w", err)
		}
		movies[screening.MovieID] = movie
	}

	hall, ok := halls[screening.HallID]
	if !ok {
		var err error
		hall, err = s.repo.Hall.FindByID(ctx, screening.HallID)
		if err != nil {
			return nil, nil, fmt.Errorf("get hall by id: %w", err)
		}
		halls[screening.HallID] = hall
	}

	return movie, hall, nil
}

func (s *screeningService) GetScreeningByID(ctx context.Context, screeningID string) (*response.ScreeningResponse, error) {
	id, err := uuid.Parse(screeningID)
	if err != nil {
		return nil, fmt.Errorf("invalid screening id: %w", err)
	}

	screening, err := s.repo.Screening.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get screening by id: %w", err)
	}
	if screening == nil {
		return nil, fmt.Errorf("screening not found")
	}

	movie, err := s.repo.Movie.FindByID(ctx, screening.MovieID)
	if err != nil {
		return nil, fmt.Errorf("get movie by id: %w", err)
	}

	hall, err := s.repo.Hall.FindByID(ctx, screening.HallID)
	if err != nil {
		return nil, fmt.Errorf("get hall by id: %w", err)
	}

	resp := response.NewScreeningResponse(screening, movie, hall)
	return &resp, nil
}

func (s *screeningService) CreateScreening(ctx context.Context, req *request.ScreeningRequest) (*response.ScreeningResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create screening validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	movie, hall, startTime, err := s.resolveScreeningRefs(ctx, req)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	screening := &entity.Screening{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		MovieID:   movie.ID,
		HallID:    hall.ID,
		StartTime: startTime,
		Price:     req.Price,
		Status:    entity.ScreeningStatusScheduled,
	}
	if req.Status != "" {
		screening.Status = entity.ScreeningStatus(req.Status)
	}

	end := screening.EndTime(movie.DurationMinutes)
	if err := s.repo.Screening.CreateChecked(ctx, screening, overlapCheck(startTime, end)); err != nil {
		return nil, fmt.Errorf("create screening: %w", err)
	}

	s.log.Info("Screening created",
		zap.String("screening_id", screening.ID.String()),
		zap.String("movie_id", movie.ID.String()),
		zap.String("hall_id", hall.ID.String()),
		zap.Time("start_time", startTime),
	)

	resp := response.NewScreeningResponse(screening, movie, hall)
	return &resp, nil
}

func (s *screeningService) UpdateScreening(ctx context.Context, screeningID string, req *request.ScreeningRequest) (*response.ScreeningResponse, error) {
	id, err := uuid.Parse(screeningID)
	if err != nil {
		return nil, fmt.Errorf("invalid screening id: %w", err)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update screening validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.Screening.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get screening by id: %w", err)
	}
	if existing == nil {
		return nil, fmt.Errorf("screening not found")
	}

	movie, hall, startTime, err := s.resolveScreeningRefs(ctx, req)
	if err != nil {
		return nil, err
	}

	screening := &entity.Screening{
		Base: entity.Base{
			ID:        id,
			CreatedAt: existing.CreatedAt,
			UpdatedAt: time.Now(),
		},
		MovieID:   movie.ID,
		HallID:    hall.ID,
		StartTime: startTime,
		Price:     req.Price,
		Status:    existing.Status,
	}
	if req.Status != "" {
		screening.Status = entity.ScreeningStatus(req.Status)
	}

	end := screening.EndTime(movie.DurationMinutes)
	if err := s.repo.Screening.UpdateChecked(ctx, screening, overlapCheck(startTime, end)); err != nil {
		return nil, fmt.Errorf("update screening: %w", err)
	}

	s.log.Info("Screening updated", zap.String("screening_id", screeningID))

	resp := response.NewScreeningResponse(screening, movie, hall)
	return &resp, nil
}

// resolveScreeningRefs checks the referenced movie and hall exist and
// parses the start time. The movie matters beyond referential integrity
// because its runtime defines the screening window.
func (s *screeningService) resolveScreeningRefs(ctx context.Context, req *request.ScreeningRequest) (*entity.Movie, *entity.Hall, time.Time, error) {
	movieID, err := uuid.Parse(req.MovieID)
	if err != nil {
		return nil, nil, time.Time{}, fmt.Errorf("invalid movie id: %w", err)
	}
	hallID, err := uuid.Parse(req.HallID)
	if err != nil {
		return nil, nil, time.Time{}, fmt.Errorf("invalid hall id: %w", err)
	}

	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		return nil, nil, time.Time{}, fmt.Errorf("invalid start time: %w", err)
	}

	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return nil, nil, time.Time{}, fmt.Errorf("get movie by id: %w", err)
	}
	if movie == nil {
		return nil, nil, time.Time{}, fmt.Errorf("movie not found")
	}

	hall, err := s.repo.Hall.FindByID(ctx, hallID)
	if err != nil {
		return nil, nil, time.Time{}, fmt.Errorf("get hall by id: %w", err)
	}
	if hall == nil {
		return nil, nil, time.Time{}, fmt.Errorf("hall not found")
	}

	return movie, hall, startTime, nil
}

func (s *screeningService) CancelScreening(ctx context.Context, screeningID string) error {
	id, err := uuid.Parse(screeningID)
	if err != nil {
		return fmt.Errorf("invalid screening id: %w", err)
	}

	screening, err := s.repo.Screening.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get screening by id: %w", err)
	}
	if screening == nil {
		return fmt.Errorf("screening not found")
	}

	// A cancelled screening frees its hall slot for future scheduling.
	if err := s.repo.Screening.UpdateStatus(ctx, id, entity.ScreeningStatusCancelled); err != nil {
		return fmt.Errorf("cancel screening: %w", err)
	}

	s.log.Info("Screening cancelled", zap.String("screening_id", screeningID))
	return nil
}

func (s *screeningService) DeleteScreening(ctx context.Context, screeningID string) error {
	id, err := uuid.Parse(screeningID)
	if err != nil {
		return fmt.Errorf("invalid screening id: %w", err)
	}

	screening, err := s.repo.Screening.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get screening by id: %w", err)
	}
	if screening == nil {
		return fmt.Errorf("screening not found")
	}

	if err := s.repo.Screening.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete screening: %w", err)
	}

	return nil
}

func (s *screeningService) GetAvailableSeats(ctx context.Context, screeningID string) ([]response.SeatResponse, error) {
	id, err := uuid.Parse(screeningID)
	if err != nil {
		return nil, fmt.Errorf("invalid screening id: %w", err)
	}

	screening, err := s.repo.Screening.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get screening by id: %w", err)
	}
	if screening == nil {
		return nil, fmt.Errorf("screening not found")
	}

	seats, err := s.repo.Seat.AvailableForScreening(ctx, screening.HallID, id)
	if err != nil {
		s.log.Error("Failed to get available seats",
			zap.Error(err),
			zap.String("screening_id", screeningID),
		)
		return nil, fmt.Errorf("get available seats: %w", err)
	}

	items := make([]response.SeatResponse, len(seats))
	for i, seat := range seats {
		items[i] = response.NewSeatResponse(seat)
	}
	return items, nil
}
