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

type SeatRepository interface {
	Create(ctx context.Context, seat *entity.Seat) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Seat, error)
	FindByHallID(ctx context.Context, hallID uuid.UUID) ([]*entity.Seat, error)
	Update(ctx context.Context, seat *entity.Seat) error
	Delete(ctx context.Context, id uuid.UUID) error

	// AvailableForScreening returns the active seats of a hall that have
	// no non-cancelled booking for the given screening.
	AvailableForScreening(ctx context.Context, hallID, screeningID uuid.UUID) ([]*entity.Seat, error)
}

type seatRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSeatRepository(db database.PgxIface, log *zap.Logger) SeatRepository {
	return &seatRepository{
		db:  db,
		log: log.With(zap.String("repository", "seat")),
	}
}

func (r *seatRepository) Create(ctx context.Context, seat *entity.Seat) error {
	query := `
		INSERT INTO seats (id, hall_id, seat_row, seat_number, seat_type, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		seat.ID,
		seat.HallID,
		seat.SeatRow,
		seat.SeatNumber,
		seat.SeatType,
		seat.IsActive,
		seat.CreatedAt,
		seat.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create seat",
			zap.Error(err),
			zap.String("hall_id", seat.HallID.String()),
			zap.String("seat", seat.Label()),
		)
		return fmt.Errorf("create seat %s: %w", seat.Label(), translateConstraint(err))
	}

	return nil
}

func (r *seatRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Seat, error) {
	query := `
		SELECT id, hall_id, seat_row, seat_number, seat_type, is_active, created_at, updated_at
		FROM seats
		WHERE id = $1
	`

	var seat entity.Seat
	err := r.db.QueryRow(ctx, query, id).Scan(
		&seat.ID,
		&seat.HallID,
		&seat.SeatRow,
		&seat.SeatNumber,
		&seat.SeatType,
		&seat.IsActive,
		&seat.CreatedAt,
		&seat.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find seat by ID",
			zap.Error(err),
			zap.String("seat_id", id.String()),
		)
		return nil, fmt.Errorf("find seat by ID %s: %w", id.String(), err)
	}

	return &seat, nil
}

func (r *seatRepository) FindByHallID(ctx context.Context, hallID uuid.UUID) ([]*entity.Seat, error) {
	query := `
		SELECT id, hall_id, seat_row, seat_number, seat_type, is_active, created_at, updated_at
		FROM seats
		WHERE hall_id = $1
		ORDER BY seat_row, seat_number
	`

	rows, err := r.db.Query(ctx, query, hallID)
	if err != nil {
		r.log.Error("Failed to find seats by hall ID",
			zap.Error(err),
			zap.String("hall_id", hallID.String()),
		)
		return nil, fmt.Errorf("find seats by hall ID %s: %w", hallID.String(), err)
	}
	defer rows.Close()

	return scanSeats(rows, r.log)
}

func (r *seatRepository) AvailableForScreening(ctx context.Context, hallID, screeningID uuid.UUID) ([]*entity.Seat, error) {
	query := `
		SELECT id, hall_id, seat_row, seat_number, seat_type, is_active, created_at, updated_at
		FROM seats
		WHERE hall_id = $1
		  AND is_active
		  AND id NOT IN (
			SELECT seat_id FROM bookings
			WHERE screening_id = $2 AND seat_id IS NOT NULL AND status <> 'cancelled'
		  )
		ORDER BY seat_row, seat_number
	`

	rows, err := r.db.Query(ctx, query, hallID, screeningID)
	if err != nil {
		r.log.Error("Failed to find available seats",
			zap.Error(err),
			zap.String("hall_id", hallID.String()),
			zap.String("screening_id", screeningID.String()),
		)
		return nil, fmt.Errorf("find available seats for screening %s: %w", screeningID.String(), err)
	}
	defer rows.Close()

	return scanSeats(rows, r.log)
}

func (r *seatRepository) Update(ctx context.Context, seat *entity.Seat) error {
	query := `
		UPDATE seats
		SET hall_id = $2, seat_row = $3, seat_number = $4, seat_type = $5,
		    is_active = $6, updated_at = $7
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		seat.ID,
		seat.HallID,
		seat.SeatRow,
		seat.SeatNumber,
		seat.SeatType,
		seat.IsActive,
		seat.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update seat",
			zap.Error(err),
			zap.String("seat_id", seat.ID.String()),
		)
		return fmt.Errorf("update seat %s: %w", seat.ID.String(), translateConstraint(err))
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("seat %s not found", seat.ID.String())
	}

	return nil
}

func (r *seatRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM seats WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete seat",
			zap.Error(err),
			zap.String("seat_id", id.String()),
		)
		return fmt.Errorf("delete seat %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("seat %s not found", id.String())
	}

	r.log.Info("Seat deleted", zap.String("seat_id", id.String()))
	return nil
}

func scanSeats(rows pgx.Rows, log *zap.Logger) ([]*entity.Seat, error) {
	var seats []*entity.Seat
	for rows.Next() {
		var seat entity.Seat
		err := rows.Scan(
			&seat.ID,
			&seat.HallID,
			&seat.SeatRow,
			&seat.SeatNumber,
			&seat.SeatType,
			&seat.IsActive,
			&seat.CreatedAt,
			&seat.UpdatedAt,
		)
		if err != nil {
			log.Error("Failed to scan seat row", zap.Error(err))
			return nil, fmt.Errorf("scan seat row: %w", err)
		}
		seats = append(seats, &seat)
	}
	return seats, nil
}
