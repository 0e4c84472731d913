package response

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinebook/internal/data/entity"
)

func TestNewBookingResponse(t *testing.T) {
	seatID := uuid.New()
	booked := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	updated := booked.Add(time.Minute)

	booking := &entity.Booking{
		ID:           uuid.New(),
		ScreeningID:  uuid.New(),
		SeatID:       &seatID,
		CustomerName: "Dewi",
		Status:       entity.BookingStatusConfirmed,
		Price:        1512.50,
		BookedAt:     booked,
		UpdatedAt:    updated,
	}
	seat := &entity.Seat{Base: entity.Base{ID: seatID}, SeatRow: "A", SeatNumber: 1}

	resp := NewBookingResponse(booking, seat)
	assert.Equal(t, booking.ID, resp.ID)
	assert.Equal(t, "A1", resp.SeatLabel)
	assert.Equal(t, booked, resp.BookedAt)
	assert.Equal(t, updated, resp.UpdatedAt)

	// Bookings carry booked_at, not created_at. The payload must not
	// grow a created_at key the model cannot back.
	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(raw, &payload))
	assert.Contains(t, payload, "booked_at")
	assert.NotContains(t, payload, "created_at")
}

func TestNewBookingResponseWithoutSeat(t *testing.T) {
	booking := &entity.Booking{
		ID:          uuid.New(),
		ScreeningID: uuid.New(),
		Status:      entity.BookingStatusPending,
	}

	resp := NewBookingResponse(booking, nil)
	assert.Nil(t, resp.SeatID)
	assert.Empty(t, resp.SeatLabel)
}
