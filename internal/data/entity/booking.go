package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking references a screening and optionally a seat. SeatID goes nil
// when the seat row is deleted; the booking itself survives.
type Booking struct {
	ID           uuid.UUID     `db:"id"`
	ScreeningID  uuid.UUID     `db:"screening_id"`
	SeatID       *uuid.UUID    `db:"seat_id"`
	CustomerName string        `db:"customer_name"`
	Email        *string       `db:"email"`
	PhoneNumber  *string       `db:"phone_number"`
	Status       BookingStatus `db:"status"`
	Price        float64       `db:"price"` // computed on persist, never client-set
	DiscountCode *string       `db:"discount_code"`
	BookedAt     time.Time     `db:"booked_at"`
	UpdatedAt    time.Time     `db:"updated_at"`
}
