package repository

import (
	"context"
	"fmt"

	"cinebook/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// MovieBookings pairs a movie title with how many bookings its
// screenings have collected.
type MovieBookings struct {
	MovieID   string
	Title     string
	NumBooked int64
}

// ReportRepository serves the read-only admin aggregates. These are
// derived views over bookings and carry no invariants of their own.
type ReportRepository interface {
	CountBookings(ctx context.Context) (int64, error)
	TotalRevenue(ctx context.Context) (float64, error)
	MostBookedMovie(ctx context.Context) (*MovieBookings, error)
}

type reportRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReportRepository(db database.PgxIface, log *zap.Logger) ReportRepository {
	return &reportRepository{
		db:  db,
		log: log.With(zap.String("repository", "report")),
	}
}

func (r *reportRepository) CountBookings(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bookings`).Scan(&count); err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, fmt.Errorf("count bookings: %w", err)
	}
	return count, nil
}

func (r *reportRepository) TotalRevenue(ctx context.Context) (float64, error) {
	var total float64
	if err := r.db.QueryRow(ctx, `SELECT COALESCE(SUM(price), 0) FROM bookings`).Scan(&total); err != nil {
		r.log.Error("Failed to sum booking revenue", zap.Error(err))
		return 0, fmt.Errorf("sum booking revenue: %w", err)
	}
	return total, nil
}

func (r *reportRepository) MostBookedMovie(ctx context.Context) (*MovieBookings, error) {
	query := `
		SELECT m.id, m.title, COUNT(b.id) AS num_booked
		FROM movies m
		JOIN screenings s ON s.movie_id = m.id
		JOIN bookings b ON b.screening_id = s.id
		GROUP BY m.id, m.title
		ORDER BY num_booked DESC
		LIMIT 1
	`

	var mb MovieBookings
	err := r.db.QueryRow(ctx, query).Scan(&mb.MovieID, &mb.Title, &mb.NumBooked)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find most booked movie", zap.Error(err))
		return nil, fmt.Errorf("find most booked movie: %w", err)
	}

	return &mb, nil
}
