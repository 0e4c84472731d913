package request

type HallRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	TotalSeats  int     `json:"total_seats" validate:"gte=0"`
	Description *string `json:"description"`
}
