// Sentinel errors shared across repositories and services. Handlers use
// errors.Is against these values to pick the HTTP status, and the
// repositories translate storage constraint violations into them so a
// race that slips past a pre-check still surfaces as the same category.
package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrSchedulingConflict is returned when a screening would overlap an
// existing non-cancelled screening in the same hall. Handlers translate
// this into an HTTP 409 response.
var ErrSchedulingConflict = errors.New("scheduling conflict")

// ErrSeatTaken is returned when a booking references a (screening, seat)
// pair that already has a non-cancelled booking. Handlers translate this
// into an HTTP 409 response.
var ErrSeatTaken = errors.New("seat already booked")

// ErrConflict covers the remaining storage-level uniqueness violations,
// such as inserting a duplicate (hall, row, number) seat.
var ErrConflict = errors.New("conflict")

const uniqueViolation = "23505"

// translateConstraint maps postgres unique violations onto the domain
// sentinels above. Any other error passes through unchanged.
func translateConstraint(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return err
	}

	switch pgErr.ConstraintName {
	case "bookings_screening_seat_active_idx":
		return ErrSeatTaken
	default:
		return ErrConflict
	}
}
