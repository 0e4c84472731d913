package wire

import (
	"net/http"

	"cinebook/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReport(r chi.Router, reportHandler *adaptor.ReportHandler, auth, admin func(http.Handler) http.Handler) {
	r.Route("/api/admin/stats", func(r chi.Router) {
		r.Use(auth)
		r.Use(admin)

		r.Get("/", reportHandler.GetStats)
	})
}
