package wire

import (
	"net/http"

	"cinebook/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSeat(r chi.Router, seatHandler *adaptor.SeatHandler, auth func(http.Handler) http.Handler) {
	r.Route("/api/seats", func(r chi.Router) {
		r.Use(auth)

		r.Post("/", seatHandler.CreateSeat)
		r.Get("/{id}", seatHandler.GetSeatByID)
		r.Put("/{id}", seatHandler.UpdateSeat)
		r.Delete("/{id}", seatHandler.DeleteSeat)
	})
}
