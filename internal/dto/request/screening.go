package request

type ScreeningRequest struct {
	MovieID   string  `json:"movie_id" validate:"required,uuid4"`
	HallID    string  `json:"hall_id" validate:"required,uuid4"`
	StartTime string  `json:"start_time" validate:"required"` // RFC 3339
	Price     float64 `json:"price" validate:"required,gt=0"`
	Status    string  `json:"status" validate:"omitempty,oneof=scheduled cancelled"`
}
