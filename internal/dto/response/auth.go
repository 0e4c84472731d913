package response

import (
	"time"

	"github.com/google/uuid"

	"cinebook/internal/data/entity"
)

type AuthResponse struct {
	Token     uuid.UUID    `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Email: u.Email,
		Role:  u.Role,
	}
}
