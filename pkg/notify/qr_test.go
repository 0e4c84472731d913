package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketQR(t *testing.T) {
	ticket := BookingTicket{
		BookingID:  "0c3b4b1e-5df6-4d76-b5c6-0e9a3a3b2f10",
		MovieTitle: "Arrival",
		HallName:   "Hall 1",
		SeatLabel:  "A12",
		StartTime:  time.Date(2026, 3, 14, 14, 0, 0, 0, time.UTC),
		Price:      1512.50,
	}

	png, err := TicketQR(ticket)
	require.NoError(t, err)
	assert.NotEmpty(t, png)

	// PNG magic bytes
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}
