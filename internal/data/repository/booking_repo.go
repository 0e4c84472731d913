package repository

import (
	"context"
	"fmt"

	"cinebook/internal/data/entity"
	"cinebook/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindAll(ctx context.Context, screeningID *uuid.UUID, limit, offset int) ([]*entity.Booking, error)
	CountAll(ctx context.Context, screeningID *uuid.UUID) (int64, error)
	Update(ctx context.Context, booking *entity.Booking) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error
	Delete(ctx context.Context, id uuid.UUID) error

	// SeatTaken reports whether a non-cancelled booking other than
	// excludeID already holds the (screening, seat) pair.
	SeatTaken(ctx context.Context, screeningID, seatID uuid.UUID, excludeID *uuid.UUID) (bool, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, screening_id, seat_id, customer_name, email, phone_number,
		                      status, price, discount_code, booked_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.ScreeningID,
		booking.SeatID,
		booking.CustomerName,
		booking.Email,
		booking.PhoneNumber,
		booking.Status,
		booking.Price,
		booking.DiscountCode,
		booking.BookedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("screening_id", booking.ScreeningID.String()),
			zap.String("customer", booking.CustomerName),
		)
		// A concurrent writer may slip past the pre-check; the partial
		// unique index turns that race into ErrSeatTaken here.
		return fmt.Errorf("create booking for screening %s: %w",
			booking.ScreeningID.String(), translateConstraint(err))
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `
		SELECT id, screening_id, seat_id, customer_name, email, phone_number,
		       status, price, discount_code, booked_at, updated_at
		FROM bookings
		WHERE id = $1
	`

	var booking entity.Booking
	err := r.db.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.ScreeningID,
		&booking.SeatID,
		&booking.CustomerName,
		&booking.Email,
		&booking.PhoneNumber,
		&booking.Status,
		&booking.Price,
		&booking.DiscountCode,
		&booking.BookedAt,
		&booking.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return &booking, nil
}

func (r *bookingRepository) FindAll(ctx context.Context, screeningID *uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT id, screening_id, seat_id, customer_name, email, phone_number,
		       status, price, discount_code, booked_at, updated_at
		FROM bookings
		WHERE ($1::uuid IS NULL OR screening_id = $1)
		ORDER BY booked_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, screeningID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		var booking entity.Booking
		err := rows.Scan(
			&booking.ID,
			&booking.ScreeningID,
			&booking.SeatID,
			&booking.CustomerName,
			&booking.Email,
			&booking.PhoneNumber,
			&booking.Status,
			&booking.Price,
			&booking.DiscountCode,
			&booking.BookedAt,
			&booking.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &booking)
	}

	return bookings, nil
}

func (r *bookingRepository) CountAll(ctx context.Context, screeningID *uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE ($1::uuid IS NULL OR screening_id = $1)`

	var count int64
	if err := r.db.QueryRow(ctx, query, screeningID).Scan(&count); err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	return count, nil
}

func (r *bookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	query := `
		UPDATE bookings
		SET screening_id = $2, seat_id = $3, customer_name = $4, email = $5,
		    phone_number = $6, status = $7, price = $8, discount_code = $9, updated_at = $10
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.ScreeningID,
		booking.SeatID,
		booking.CustomerName,
		booking.Email,
		booking.PhoneNumber,
		booking.Status,
		booking.Price,
		booking.DiscountCode,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return fmt.Errorf("update booking %s: %w", booking.ID.String(), translateConstraint(err))
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", booking.ID.String())
	}

	return nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error {
	query := `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %s status to %s: %w", id.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", id.String())
	}

	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM bookings WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return fmt.Errorf("delete booking %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", id.String())
	}

	r.log.Info("Booking deleted", zap.String("booking_id", id.String()))
	return nil
}

func (r *bookingRepository) SeatTaken(ctx context.Context, screeningID, seatID uuid.UUID, excludeID *uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE screening_id = $1 AND seat_id = $2 AND status <> 'cancelled'
			  AND ($3::uuid IS NULL OR id <> $3)
		)
	`

	var taken bool
	if err := r.db.QueryRow(ctx, query, screeningID, seatID, excludeID).Scan(&taken); err != nil {
		r.log.Error("Failed to check seat booking",
			zap.Error(err),
			zap.String("screening_id", screeningID.String()),
			zap.String("seat_id", seatID.String()),
		)
		return false, fmt.Errorf("check seat %s for screening %s: %w",
			seatID.String(), screeningID.String(), err)
	}

	return taken, nil
}
