package notify

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

const qrSize = 256

// TicketQR encodes the booking details into a PNG QR code suitable for
// scanning at the hall entrance.
func TicketQR(ticket BookingTicket) ([]byte, error) {
	content := fmt.Sprintf("booking=%s;movie=%s;hall=%s;seat=%s;start=%s;price=%.2f",
		ticket.BookingID,
		ticket.MovieTitle,
		ticket.HallName,
		ticket.SeatLabel,
		ticket.StartTime.Format("2006-01-02T15:04"),
		ticket.Price,
	)

	png, err := qrcode.Encode(content, qrcode.Medium, qrSize)
	if err != nil {
		return nil, fmt.Errorf("encode ticket QR: %w", err)
	}

	return png, nil
}
