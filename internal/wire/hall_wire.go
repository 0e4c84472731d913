package wire

import (
	"net/http"

	"cinebook/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireHall(r chi.Router, hallHandler *adaptor.HallHandler, seatHandler *adaptor.SeatHandler, auth func(http.Handler) http.Handler) {
	// Hall management is for operators only.
	r.Route("/api/halls", func(r chi.Router) {
		r.Use(auth)

		r.Get("/", hallHandler.GetHalls)
		r.Post("/", hallHandler.CreateHall)
		r.Get("/{id}", hallHandler.GetHallByID)
		r.Put("/{id}", hallHandler.UpdateHall)
		r.Delete("/{id}", hallHandler.DeleteHall)
		r.Get("/{id}/seats", seatHandler.GetSeatsByHall)
	})
}
