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

type ScreeningRepository interface {
	// CreateChecked inserts the screening inside a transaction that first
	// locks the hall's non-cancelled screenings and runs the supplied
	// overlap check against them. The check error aborts the insert.
	CreateChecked(ctx context.Context, screening *entity.Screening, check OverlapCheck) error
	// UpdateChecked does the same for updates, excluding the screening
	// itself from the locked set so re-validation stays idempotent.
	UpdateChecked(ctx context.Context, screening *entity.Screening, check OverlapCheck) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Screening, error)
	FindAll(ctx context.Context, movieID *uuid.UUID, limit, offset int) ([]*entity.Screening, error)
	CountAll(ctx context.Context, movieID *uuid.UUID) (int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ScreeningStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// OverlapCheck receives the [start, end) windows of the other screenings
// sharing the hall and returns ErrSchedulingConflict when any overlaps.
type OverlapCheck func(existing []entity.ScreeningInterval) error

type screeningRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewScreeningRepository(db database.PgxIface, log *zap.Logger) ScreeningRepository {
	return &screeningRepository{
		db:  db,
		log: log.With(zap.String("repository", "screening")),
	}
}

func (r *screeningRepository) CreateChecked(ctx context.Context, screening *entity.Screening, check OverlapCheck) error {
	query := `
		INSERT INTO screenings (id, movie_id, hall_id, start_time, price, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	err := r.withHallLock(ctx, screening.HallID, screening.ID, check, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, query,
			screening.ID,
			screening.MovieID,
			screening.HallID,
			screening.StartTime,
			screening.Price,
			screening.Status,
			screening.CreatedAt,
			screening.UpdatedAt,
		)
		return err
	})

	if err != nil {
		r.log.Error("Failed to create screening",
			zap.Error(err),
			zap.String("movie_id", screening.MovieID.String()),
			zap.String("hall_id", screening.HallID.String()),
			zap.Time("start_time", screening.StartTime),
		)
		return fmt.Errorf("create screening for movie %s hall %s: %w",
			screening.MovieID.String(), screening.HallID.String(), err)
	}

	return nil
}

func (r *screeningRepository) UpdateChecked(ctx context.Context, screening *entity.Screening, check OverlapCheck) error {
	query := `
		UPDATE screenings
		SET movie_id = $2, hall_id = $3, start_time = $4, price = $5, status = $6, updated_at = $7
		WHERE id = $1
	`

	err := r.withHallLock(ctx, screening.HallID, screening.ID, check, func(tx pgx.Tx) error {
		result, err := tx.Exec(ctx, query,
			screening.ID,
			screening.MovieID,
			screening.HallID,
			screening.StartTime,
			screening.Price,
			screening.Status,
			screening.UpdatedAt,
		)
		if err != nil {
			return err
		}
		if result.RowsAffected() == 0 {
			return fmt.Errorf("screening %s not found", screening.ID.String())
		}
		return nil
	})

	if err != nil {
		r.log.Error("Failed to update screening",
			zap.Error(err),
			zap.String("screening_id", screening.ID.String()),
		)
		return fmt.Errorf("update screening %s: %w", screening.ID.String(), err)
	}

	return nil
}

// withHallLock runs the overlap check and the write in one transaction.
// The FOR UPDATE lock on the hall's screenings serializes concurrent
// writers, so the check-then-write sequence cannot race.
func (r *screeningRepository) withHallLock(ctx context.Context, hallID, excludeID uuid.UUID, check OverlapCheck, write func(tx pgx.Tx) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	lockQuery := `
		SELECT s.id, s.start_time, m.duration_minutes
		FROM screenings s
		JOIN movies m ON m.id = s.movie_id
		WHERE s.hall_id = $1 AND s.status <> 'cancelled' AND s.id <> $2
		FOR UPDATE OF s
	`

	rows, err := tx.Query(ctx, lockQuery, hallID, excludeID)
	if err != nil {
		return fmt.Errorf("lock hall screenings: %w", err)
	}

	var existing []entity.ScreeningInterval
	for rows.Next() {
		var iv entity.ScreeningInterval
		if err := rows.Scan(&iv.ID, &iv.StartTime, &iv.DurationMinutes); err != nil {
			rows.Close()
			return fmt.Errorf("scan screening interval: %w", err)
		}
		existing = append(existing, iv)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("read hall screenings: %w", err)
	}

	if err := check(existing); err != nil {
		return err
	}

	if err := write(tx); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *screeningRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Screening, error) {
	query := `
		SELECT id, movie_id, hall_id, start_time, price, status, created_at, updated_at
		FROM screenings
		WHERE id = $1
	`

	var screening entity.Screening
	err := r.db.QueryRow(ctx, query, id).Scan(
		&screening.ID,
		&screening.MovieID,
		&screening.HallID,
		&screening.StartTime,
		&screening.Price,
		&screening.Status,
		&screening.CreatedAt,
		&screening.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find screening by ID",
			zap.Error(err),
			zap.String("screening_id", id.String()),
		)
		return nil, fmt.Errorf("find screening by ID %s: %w", id.String(), err)
	}

	return &screening, nil
}

func (r *screeningRepository) FindAll(ctx context.Context, movieID *uuid.UUID, limit, offset int) ([]*entity.Screening, error) {
	query := `
		SELECT id, movie_id, hall_id, start_time, price, status, created_at, updated_at
		FROM screenings
		WHERE ($1::uuid IS NULL OR movie_id = $1)
		ORDER BY start_time
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, movieID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find screenings", zap.Error(err))
		return nil, fmt.Errorf("find screenings: %w", err)
	}
	defer rows.Close()

	var screenings []*entity.Screening
	for rows.Next() {
		var screening entity.Screening
		err := rows.Scan(
			&screening.ID,
			&screening.MovieID,
			&screening.HallID,
			&screening.StartTime,
			&screening.Price,
			&screening.Status,
			&screening.CreatedAt,
			&screening.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan screening row", zap.Error(err))
			return nil, fmt.Errorf("scan screening row: %w", err)
		}
		screenings = append(screenings, &screening)
	}

	return screenings, nil
}

func (r *screeningRepository) CountAll(ctx context.Context, movieID *uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM screenings WHERE ($1::uuid IS NULL OR movie_id = $1)`

	var count int64
	if err := r.db.QueryRow(ctx, query, movieID).Scan(&count); err != nil {
		r.log.Error("Failed to count screenings", zap.Error(err))
		return 0, fmt.Errorf("count screenings: %w", err)
	}

	return count, nil
}

func (r *screeningRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ScreeningStatus) error {
	query := `UPDATE screenings SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update screening status",
			zap.Error(err),
			zap.String("screening_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update screening %s status to %s: %w", id.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("screening %s not found", id.String())
	}

	return nil
}

func (r *screeningRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM screenings WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete screening",
			zap.Error(err),
			zap.String("screening_id", id.String()),
		)
		return fmt.Errorf("delete screening %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("screening %s not found", id.String())
	}

	r.log.Info("Screening deleted", zap.String("screening_id", id.String()))
	return nil
}
