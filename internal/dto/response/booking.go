package response

import (
	"time"

	"github.com/google/uuid"

	"cinebook/internal/data/entity"
)

type BookingResponse struct {
	ID           uuid.UUID  `json:"id"`
	ScreeningID  uuid.UUID  `json:"screening_id"`
	SeatID       *uuid.UUID `json:"seat_id,omitempty"`
	SeatLabel    string     `json:"seat_label,omitempty"`
	CustomerName string     `json:"customer_name"`
	Email        *string    `json:"email,omitempty"`
	PhoneNumber  *string    `json:"phone_number,omitempty"`
	DiscountCode *string    `json:"discount_code,omitempty"`
	Price        float64    `json:"price"`
	Status       string     `json:"status"`
	BookedAt     time.Time  `json:"booked_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// NewBookingResponse adds the seat label when the seat is known. A nil
// seat leaves the label empty, which also covers unassigned bookings.
func NewBookingResponse(b *entity.Booking, seat *entity.Seat) BookingResponse {
	resp := BookingResponse{
		ID:           b.ID,
		ScreeningID:  b.ScreeningID,
		SeatID:       b.SeatID,
		CustomerName: b.CustomerName,
		Email:        b.Email,
		PhoneNumber:  b.PhoneNumber,
		DiscountCode: b.DiscountCode,
		Price:        b.Price,
		Status:       string(b.Status),
		BookedAt:     b.BookedAt,
		UpdatedAt:    b.UpdatedAt,
	}
	if seat != nil {
		resp.SeatLabel = seat.Label()
	}
	return resp
}
