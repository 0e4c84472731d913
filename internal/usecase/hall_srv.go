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

type HallService interface {
	GetHalls(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.HallResponse], error)
	GetHallByID(ctx context.Context, hallID string) (*response.HallResponse, error)
	CreateHall(ctx context.Context, req *request.HallRequest) (*response.HallResponse, error)
	UpdateHall(ctx context.Context, hallID string, req *request.HallRequest) (*response.HallResponse, error)
	DeleteHall(ctx context.Context, hallID string) error
}

type hallService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewHallService(repo *repository.Repository, log *zap.Logger) HallService {
	return &hallService{
		repo: repo,
		log:  log.With(zap.String("service", "hall")),
	}
}

func (s *hallService) GetHalls(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.HallResponse], error) {
	halls, err := s.repo.Hall.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get halls", zap.Error(err))
		return nil, fmt.Errorf("get halls: %w", err)
	}

	total, err := s.repo.Hall.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count halls", zap.Error(err))
		return nil, fmt.Errorf("count halls: %w", err)
	}

	items := make([]response.HallResponse, len(halls))
	for i, hall := range halls {
		items[i] = response.NewHallResponse(hall)
	}

	resp := response.NewPaginatedResponse(items, req.Page, req.PerPage, utils.CalculateTotalPages(total, req.PerPage), total)
	return &resp, nil
}

func (s *hallService) GetHallByID(ctx context.Context, hallID string) (*response.HallResponse, error) {
	id, err := uuid.Parse(hallID)
	if err != nil {
		return nil, fmt.Errorf("invalid hall id: %w", err)
	}

	hall, err := s.repo.Hall.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get hall by ID",
			zap.Error(err),
			zap.String("hall_id", hallID),
		)
		return nil, fmt.Errorf("get hall by id: %w", err)
	}
	if hall == nil {
		return nil, fmt.Errorf("hall not found")
	}

	resp := response.NewHallResponse(hall)
	return &resp, nil
}

func (s *hallService) CreateHall(ctx context.Context, req *request.HallRequest) (*response.HallResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create hall validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	hall := &entity.Hall{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		TotalSeats:  req.TotalSeats,
		Description: req.Description,
	}

	if err := s.repo.Hall.Create(ctx, hall); err != nil {
		return nil, fmt.Errorf("create hall: %w", err)
	}

	s.log.Info("Hall created",
		zap.String("hall_id", hall.ID.String()),
		zap.String("name", hall.Name),
	)

	resp := response.NewHallResponse(hall)
	return &resp, nil
}

func (s *hallService) UpdateHall(ctx context.Context, hallID string, req *request.HallRequest) (*response.HallResponse, error) {
	id, err := uuid.Parse(hallID)
	if err != nil {
		return nil, fmt.Errorf("invalid hall id: %w", err)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update hall validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	hall, err := s.repo.Hall.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get hall by id: %w", err)
	}
	if hall == nil {
		return nil, fmt.Errorf("hall not found")
	}

	hall.Name = req.Name
	hall.TotalSeats = req.TotalSeats
	hall.Description = req.Description
	hall.UpdatedAt = time.Now()

	if err := s.repo.Hall.Update(ctx, hall); err != nil {
		return nil, fmt.Errorf("update hall: %w", err)
	}

	s.log.Info("Hall updated", zap.String("hall_id", hallID))

	resp := response.NewHallResponse(hall)
	return &resp, nil
}

func (s *hallService) DeleteHall(ctx context.Context, hallID string) error {
	id, err := uuid.Parse(hallID)
	if err != nil {
		return fmt.Errorf("invalid hall id: %w", err)
	}

	hall, err := s.repo.Hall.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get hall by id: %w", err)
	}
	if hall == nil {
		return fmt.Errorf("hall not found")
	}

	// Seats cascade; bookings keep their rows with seat_id set to null.
	if err := s.repo.Hall.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete hall: %w", err)
	}

	return nil
}
