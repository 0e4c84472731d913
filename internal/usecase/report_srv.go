package usecase

import (
	"context"
	"fmt"

	"cinebook/internal/data/repository"
	"cinebook/internal/dto/response"

	"go.uber.org/zap"
)

type ReportService interface {
	GetStats(ctx context.Context) (*response.StatsResponse, error)
}

type reportService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReportService(repo *repository.Repository, log *zap.Logger) ReportService {
	return &reportService{
		repo: repo,
		log:  log.With(zap.String("service", "report")),
	}
}

func (s *reportService) GetStats(ctx context.Context) (*response.StatsResponse, error) {
	total, err := s.repo.Report.CountBookings(ctx)
	if err != nil {
		s.log.Error("Failed to count bookings", zap.Error(err))
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	revenue, err := s.repo.Report.TotalRevenue(ctx)
	if err != nil {
		s.log.Error("Failed to sum revenue", zap.Error(err))
		return nil, fmt.Errorf("sum revenue: %w", err)
	}

	stats := &response.StatsResponse{
		TotalBookings: total,
		TotalRevenue:  revenue,
	}

	mostBooked, err := s.repo.Report.MostBookedMovie(ctx)
	if err != nil {
		s.log.Error("Failed to find most booked movie", zap.Error(err))
		return nil, fmt.Errorf("find most booked movie: %w", err)
	}
	if mostBooked != nil {
		stats.MostBookedMovie = &response.MostBookedMovie{
			MovieID:     mostBooked.MovieID,
			Title:       mostBooked.Title,
			NumBookings: mostBooked.NumBooked,
		}
	}

	return stats, nil
}
