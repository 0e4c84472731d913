package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"cinebook/internal/data/entity"
)

// The availability query must keep three filters: the hall, active seats
// only, and no non-cancelled booking for the screening.
const availableSeatsPattern = `(?s)SELECT .* FROM seats\s+` +
	`WHERE hall_id = \$1\s+AND is_active\s+AND id NOT IN \(\s*` +
	`SELECT seat_id FROM bookings\s+` +
	`WHERE screening_id = \$2 AND seat_id IS NOT NULL AND status <> 'cancelled'`

func seatColumns() []string {
	return []string{"id", "hall_id", "seat_row", "seat_number", "seat_type", "is_active", "created_at", "updated_at"}
}

func TestAvailableForScreening(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	hallID := uuid.New()
	screeningID := uuid.New()
	now := time.Now()

	freeA1 := uuid.New()
	freeA3 := uuid.New()
	rows := pgxmock.NewRows(seatColumns()).
		AddRow(freeA1, hallID, "A", 1, entity.SeatTypeRegular, true, now, now).
		AddRow(freeA3, hallID, "A", 3, entity.SeatTypeVIP, true, now, now)

	mock.ExpectQuery(availableSeatsPattern).
		WithArgs(hallID, screeningID).
		WillReturnRows(rows)

	repo := NewSeatRepository(mock, zap.NewNop())
	seats, err := repo.AvailableForScreening(context.Background(), hallID, screeningID)
	require.NoError(t, err)

	require.Len(t, seats, 2)
	assert.Equal(t, freeA1, seats[0].ID)
	assert.Equal(t, "A1", seats[0].Label())
	assert.Equal(t, freeA3, seats[1].ID)
	assert.Equal(t, entity.SeatTypeVIP, seats[1].SeatType)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAvailableForScreeningFullyBooked(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	hallID := uuid.New()
	screeningID := uuid.New()

	mock.ExpectQuery(availableSeatsPattern).
		WithArgs(hallID, screeningID).
		WillReturnRows(pgxmock.NewRows(seatColumns()))

	repo := NewSeatRepository(mock, zap.NewNop())
	seats, err := repo.AvailableForScreening(context.Background(), hallID, screeningID)
	require.NoError(t, err)
	assert.Empty(t, seats)

	assert.NoError(t, mock.ExpectationsWereMet())
}
