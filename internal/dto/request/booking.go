package request

// Price is never taken from the client, the server computes it.
type BookingRequest struct {
	ScreeningID  string  `json:"screening_id" validate:"required,uuid4"`
	SeatID       *string `json:"seat_id" validate:"omitempty,uuid4"`
	CustomerName string  `json:"customer_name" validate:"required,max=100"`
	Email        *string `json:"email" validate:"omitempty,email"`
	PhoneNumber  *string `json:"phone_number" validate:"omitempty,max=20"`
	DiscountCode *string `json:"discount_code" validate:"omitempty,max=20"`
	Status       string  `json:"status" validate:"omitempty,oneof=pending confirmed cancelled"`
}
