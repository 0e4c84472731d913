package response

import (
	"time"

	"github.com/google/uuid"

	"cinebook/internal/data/entity"
)

type MovieResponse struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Description     *string   `json:"description,omitempty"`
	DurationMinutes int       `json:"duration_minutes"`
	Rating          string    `json:"rating"`
	ReleaseDate     *string   `json:"release_date,omitempty"`
	Language        string    `json:"language,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func NewMovieResponse(m *entity.Movie) MovieResponse {
	resp := MovieResponse{
		ID:              m.ID,
		Title:           m.Title,
		Description:     m.Description,
		DurationMinutes: m.DurationMinutes,
		Rating:          string(m.Rating),
		Language:        m.Language,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	if m.ReleaseDate != nil {
		d := m.ReleaseDate.Format("2006-01-02")
		resp.ReleaseDate = &d
	}
	return resp
}
