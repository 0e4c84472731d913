package repository

import (
	"cinebook/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User      UserRepository
	Session   SessionRepository
	Movie     MovieRepository
	Hall      HallRepository
	Seat      SeatRepository
	Screening ScreeningRepository
	Booking   BookingRepository
	Report    ReportRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:      NewUserRepository(db, log),
		Session:   NewSessionRepository(db, log),
		Movie:     NewMovieRepository(db, log),
		Hall:      NewHallRepository(db, log),
		Seat:      NewSeatRepository(db, log),
		Screening: NewScreeningRepository(db, log),
		Booking:   NewBookingRepository(db, log),
		Report:    NewReportRepository(db, log),
	}
}
