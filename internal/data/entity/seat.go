package entity

import (
	"strconv"

	"github.com/google/uuid"
)

type SeatType string

const (
	SeatTypeRegular SeatType = "regular"
	SeatTypeVIP     SeatType = "vip"
)

type Seat struct {
	Base
	HallID     uuid.UUID `db:"hall_id"`
	SeatRow    string    `db:"seat_row"`    // A, B, C, etc.
	SeatNumber int       `db:"seat_number"` // 1, 2, 3, etc.
	SeatType   SeatType  `db:"seat_type"`
	IsActive   bool      `db:"is_active"`
}

// Label returns the human-readable seat position, e.g. "A12".
func (s *Seat) Label() string {
	return s.SeatRow + strconv.Itoa(s.SeatNumber)
}
