package response

import (
	"time"

	"github.com/google/uuid"

	"cinebook/internal/data/entity"
)

type HallResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	TotalSeats  int       `json:"total_seats"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewHallResponse(h *entity.Hall) HallResponse {
	return HallResponse{
		ID:          h.ID,
		Name:        h.Name,
		TotalSeats:  h.TotalSeats,
		Description: h.Description,
		CreatedAt:   h.CreatedAt,
		UpdatedAt:   h.UpdatedAt,
	}
}
