package entity

import (
	"time"

	"github.com/google/uuid"
)

type ScreeningStatus string

const (
	ScreeningStatusScheduled ScreeningStatus = "scheduled"
	ScreeningStatusCancelled ScreeningStatus = "cancelled"
)

type Screening struct {
	Base
	MovieID   uuid.UUID       `db:"movie_id"`
	HallID    uuid.UUID       `db:"hall_id"`
	StartTime time.Time       `db:"start_time"`
	Price     float64         `db:"price"` // base price per seat
	Status    ScreeningStatus `db:"status"`
}

// EndTime derives the end of the screening from the movie runtime.
func (s *Screening) EndTime(durationMinutes int) time.Time {
	return s.StartTime.Add(time.Duration(durationMinutes) * time.Minute)
}

// ScreeningInterval is the projection of a screening used by the hall
// overlap check: just enough to reconstruct its [start, end) window.
type ScreeningInterval struct {
	ID              uuid.UUID
	StartTime       time.Time
	DurationMinutes int
}

func (i ScreeningInterval) End() time.Time {
	return i.StartTime.Add(time.Duration(i.DurationMinutes) * time.Minute)
}
