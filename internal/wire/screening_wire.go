package wire

import (
	"net/http"

	"cinebook/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireScreening(r chi.Router, screeningHandler *adaptor.ScreeningHandler, limiter func(http.Handler) http.Handler) {
	r.Get("/api/screenings", screeningHandler.GetScreenings)
	r.Get("/api/screenings/{id}", screeningHandler.GetScreeningByID)
	r.Get("/api/screenings/{id}/available-seats", screeningHandler.GetAvailableSeats)

	// Scheduling writes go through the rate limiter.
	r.Group(func(r chi.Router) {
		r.Use(limiter)

		r.Post("/api/screenings", screeningHandler.CreateScreening)
		r.Put("/api/screenings/{id}", screeningHandler.UpdateScreening)
		r.Post("/api/screenings/{id}/cancel", screeningHandler.CancelScreening)
		r.Delete("/api/screenings/{id}", screeningHandler.DeleteScreening)
	})
}
