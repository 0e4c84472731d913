package response

type MostBookedMovie struct {
	MovieID     string `json:"movie_id"`
	Title       string `json:"title"`
	NumBookings int64  `json:"num_bookings"`
}

type StatsResponse struct {
	TotalBookings   int64            `json:"total_bookings"`
	TotalRevenue    float64          `json:"total_revenue"`
	MostBookedMovie *MostBookedMovie `json:"most_booked_movie"`
}
