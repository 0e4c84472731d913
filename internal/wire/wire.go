package wire

import (
	"net/http"

	"cinebook/internal/adaptor"
	"cinebook/internal/data/repository"
	"cinebook/internal/usecase"
	"cinebook/pkg/middleware"
	"cinebook/pkg/notify"
	"cinebook/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring builds the service graph and the router on top of it.
func Wiring(repo *repository.Repository, config *utils.Config, rdb *redis.Client, notifier *notify.Notifier, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, notifier, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, service, config, rdb, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	service *usecase.Service,
	config *utils.Config,
	rdb *redis.Client,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS)

	// The write limiter protects the booking and scheduling endpoints.
	// Without redis (or with the flag off) it is a no-op.
	var limiterClient *redis.Client
	if config.RateLimit.Enabled {
		limiterClient = rdb
	}
	limiter := middleware.RateLimit(limiterClient, config.RateLimit.Limit, config.RateLimit.Window, logger)

	auth := middleware.AuthSession(service.Auth, logger)
	admin := middleware.Admin(logger)

	wireAuth(r, handler.Auth, auth)
	wireMovie(r, handler.Movie)
	wireHall(r, handler.Hall, handler.Seat, auth)
	wireSeat(r, handler.Seat, auth)
	wireScreening(r, handler.Screening, limiter)
	wireBooking(r, handler.Booking, limiter)
	wireReport(r, handler.Report, auth, admin)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
