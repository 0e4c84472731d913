package adaptor

import (
	"encoding/json"
	"net/http"

	"cinebook/internal/dto/request"
	"cinebook/internal/usecase"
	"cinebook/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ScreeningHandler struct {
	service usecase.ScreeningService
	log     *zap.Logger
}

func NewScreeningHandler(service usecase.ScreeningService, log *zap.Logger) *ScreeningHandler {
	return &ScreeningHandler{
		service: service,
		log:     log.With(zap.String("handler", "screening")),
	}
}

// GetScreenings handles GET /api/screenings
func (h *ScreeningHandler) GetScreenings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	var movieID *string
	if id := query.Get("movie_id"); id != "" {
		movieID = &id
	}

	screenings, err := h.service.GetScreenings(r.Context(), req, movieID)
	if err != nil {
		handleServiceError(w, h.log, err, "get screenings")
		return
	}

	utils.ResponseSuccess(w, "Screenings retrieved successfully", screenings)
}

// GetScreeningByID handles GET /api/screenings/{id}
func (h *ScreeningHandler) GetScreeningByID(w http.ResponseWriter, r *http.Request) {
	screeningID := chi.URLParam(r, "id")
	if screeningID == "" {
		utils.ResponseBadRequest(w, "Screening ID is required", nil)
		return
	}

	screening, err := h.service.GetScreeningByID(r.Context(), screeningID)
	if err != nil {
		handleServiceError(w, h.log, err, "get screening by ID")
		return
	}

	utils.ResponseSuccess(w, "Screening retrieved successfully", screening)
}

// GetAvailableSeats handles GET /api/screenings/{id}/available-seats
func (h *ScreeningHandler) GetAvailableSeats(w http.ResponseWriter, r *http.Request) {
	screeningID := chi.URLParam(r, "id")
	if screeningID == "" {
		utils.ResponseBadRequest(w, "Screening ID is required", nil)
		return
	}

	seats, err := h.service.GetAvailableSeats(r.Context(), screeningID)
	if err != nil {
		handleServiceError(w, h.log, err, "get available seats")
		return
	}

	utils.ResponseSuccess(w, "Available seats retrieved successfully", seats)
}

// CreateScreening handles POST /api/screenings
func (h *ScreeningHandler) CreateScreening(w http.ResponseWriter, r *http.Request) {
	var req request.ScreeningRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	screening, err := h.service.CreateScreening(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create screening")
		return
	}

	utils.ResponseCreated(w, "Screening created successfully", screening)
}

// UpdateScreening handles PUT /api/screenings/{id}
func (h *ScreeningHandler) UpdateScreening(w http.ResponseWriter, r *http.Request) {
	screeningID := chi.URLParam(r, "id")
	if screeningID == "" {
		utils.ResponseBadRequest(w, "Screening ID is required", nil)
		return
	}

	var req request.ScreeningRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	screening, err := h.service.UpdateScreening(r.Context(), screeningID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update screening")
		return
	}

	utils.ResponseSuccess(w, "Screening updated successfully", screening)
}

// CancelScreening handles POST /api/screenings/{id}/cancel
func (h *ScreeningHandler) CancelScreening(w http.ResponseWriter, r *http.Request) {
	screeningID := chi.URLParam(r, "id")
	if screeningID == "" {
		utils.ResponseBadRequest(w, "Screening ID is required", nil)
		return
	}

	if err := h.service.CancelScreening(r.Context(), screeningID); err != nil {
		handleServiceError(w, h.log, err, "cancel screening")
		return
	}

	utils.ResponseSuccess(w, "Screening cancelled successfully", nil)
}

// DeleteScreening handles DELETE /api/screenings/{id}
func (h *ScreeningHandler) DeleteScreening(w http.ResponseWriter, r *http.Request) {
	screeningID := chi.URLParam(r, "id")
	if screeningID == "" {
		utils.ResponseBadRequest(w, "Screening ID is required", nil)
		return
	}

	if err := h.service.DeleteScreening(r.Context(), screeningID); err != nil {
		handleServiceError(w, h.log, err, "delete screening")
		return
	}

	utils.ResponseSuccess(w, "Screening deleted successfully", nil)
}
