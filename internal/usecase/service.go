package usecase

import (
	"cinebook/internal/data/repository"
	"cinebook/pkg/notify"
	"cinebook/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth      AuthService
	Movie     MovieService
	Hall      HallService
	Seat      SeatService
	Screening ScreeningService
	Booking   BookingService
	Report    ReportService
}

func NewService(repo *repository.Repository, config *utils.Config, notifier *notify.Notifier, log *zap.Logger) *Service {
	return &Service{
		Auth:      NewAuthService(repo, config, log),
		Movie:     NewMovieService(repo, log),
		Hall:      NewHallService(repo, log),
		Seat:      NewSeatService(repo, log),
		Screening: NewScreeningService(repo, log),
		Booking:   NewBookingService(repo, notifier, log),
		Report:    NewReportService(repo, log),
	}
}
