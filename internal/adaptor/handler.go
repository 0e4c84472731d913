package adaptor

import (
	"errors"
	"net/http"
	"strings"

	"cinebook/internal/data/repository"
	"cinebook/internal/usecase"
	"cinebook/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth      *AuthHandler
	Movie     *MovieHandler
	Hall      *HallHandler
	Seat      *SeatHandler
	Screening *ScreeningHandler
	Booking   *BookingHandler
	Report    *ReportHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(service.Auth, log),
		Movie:     NewMovieHandler(service.Movie, log),
		Hall:      NewHallHandler(service.Hall, log),
		Seat:      NewSeatHandler(service.Seat, log),
		Screening: NewScreeningHandler(service.Screening, log),
		Booking:   NewBookingHandler(service.Booking, log),
		Report:    NewReportHandler(service.Report, log),
	}
}

// handleServiceError maps service errors onto HTTP responses. The
// scheduling and seat conflicts carry sentinels; the rest is matched on
// the message the services phrase consistently.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	errMsg := err.Error()

	switch {
	case errors.Is(err, repository.ErrSchedulingConflict),
		errors.Is(err, repository.ErrSeatTaken),
		errors.Is(err, repository.ErrConflict):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, errMsg)

	case strings.Contains(errMsg, "not found"):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "invalid credentials"):
		log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, errMsg)

	case strings.Contains(errMsg, "already exists"):
		log.Warn(operation+" failed - already exists", zap.Error(err))
		utils.ResponseConflict(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"):
		log.Warn(operation+" failed - bad input", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
