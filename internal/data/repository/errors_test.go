package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestTranslateConstraint(t *testing.T) {
	t.Run("seat index maps to ErrSeatTaken", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "bookings_screening_seat_active_idx"}
		assert.ErrorIs(t, translateConstraint(pgErr), ErrSeatTaken)
	})

	t.Run("other unique violations map to ErrConflict", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "seats_hall_row_number_key"}
		assert.ErrorIs(t, translateConstraint(pgErr), ErrConflict)
	})

	t.Run("wrapped violations are still recognized", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
		wrapped := fmt.Errorf("create user: %w", pgErr)
		assert.ErrorIs(t, translateConstraint(wrapped), ErrConflict)
	})

	t.Run("non-unique errors pass through", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23503"}
		assert.Equal(t, error(pgErr), translateConstraint(pgErr))

		plain := errors.New("connection reset")
		assert.Equal(t, plain, translateConstraint(plain))
	})
}
