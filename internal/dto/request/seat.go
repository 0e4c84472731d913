package request

type SeatRequest struct {
	HallID     string `json:"hall_id" validate:"required,uuid4"`
	SeatRow    string `json:"seat_row" validate:"required,max=3"`
	SeatNumber int    `json:"seat_number" validate:"required,gt=0"`
	SeatType   string `json:"seat_type" validate:"required,oneof=regular vip"`
	IsActive   *bool  `json:"is_active"`
}
