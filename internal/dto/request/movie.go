package request

type MovieRequest struct {
	Title           string  `json:"title" validate:"required,max=200"`
	Description     *string `json:"description"`
	DurationMinutes int     `json:"duration_minutes" validate:"gte=0"`
	Rating          string  `json:"rating" validate:"required,oneof=G PG PG-13 R"`
	ReleaseDate     *string `json:"release_date"` // YYYY-MM-DD
	Language        string  `json:"language" validate:"omitempty,max=50"`
}
