package response

import (
	"time"

	"github.com/google/uuid"

	"cinebook/internal/data/entity"
)

type ScreeningResponse struct {
	ID         uuid.UUID `json:"id"`
	MovieID    uuid.UUID `json:"movie_id"`
	MovieTitle string    `json:"movie_title,omitempty"`
	HallID     uuid.UUID `json:"hall_id"`
	HallName   string    `json:"hall_name,omitempty"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	Price      float64   `json:"price"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewScreeningResponse folds in the movie and hall so the client does
// not need extra lookups. Either may be nil when only the bare screening
// is available.
func NewScreeningResponse(s *entity.Screening, movie *entity.Movie, hall *entity.Hall) ScreeningResponse {
	resp := ScreeningResponse{
		ID:        s.ID,
		MovieID:   s.MovieID,
		HallID:    s.HallID,
		StartTime: s.StartTime,
		EndTime:   s.StartTime,
		Price:     s.Price,
		Status:    string(s.Status),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
	if movie != nil {
		resp.MovieTitle = movie.Title
		resp.EndTime = s.EndTime(movie.DurationMinutes)
	}
	if hall != nil {
		resp.HallName = hall.Name
	}
	return resp
}
