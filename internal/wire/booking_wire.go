package wire

import (
	"net/http"

	"cinebook/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler, limiter func(http.Handler) http.Handler) {
	r.Get("/api/bookings", bookingHandler.GetBookings)
	r.Get("/api/bookings/{id}", bookingHandler.GetBookingByID)

	// Booking writes go through the rate limiter.
	r.Group(func(r chi.Router) {
		r.Use(limiter)

		r.Post("/api/bookings", bookingHandler.CreateBooking)
		r.Put("/api/bookings/{id}", bookingHandler.UpdateBooking)
		r.Post("/api/bookings/{id}/cancel", bookingHandler.CancelBooking)
		r.Delete("/api/bookings/{id}", bookingHandler.DeleteBooking)
	})
}
