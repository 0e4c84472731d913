package response

import (
	"time"

	"github.com/google/uuid"

	"cinebook/internal/data/entity"
)

type SeatResponse struct {
	ID         uuid.UUID `json:"id"`
	HallID     uuid.UUID `json:"hall_id"`
	SeatRow    string    `json:"seat_row"`
	SeatNumber int       `json:"seat_number"`
	SeatType   string    `json:"seat_type"`
	IsActive   bool      `json:"is_active"`
	Label      string    `json:"label"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func NewSeatResponse(s *entity.Seat) SeatResponse {
	return SeatResponse{
		ID:         s.ID,
		HallID:     s.HallID,
		SeatRow:    s.SeatRow,
		SeatNumber: s.SeatNumber,
		SeatType:   string(s.SeatType),
		IsActive:   s.IsActive,
		Label:      s.Label(),
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}
