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

type SeatHandler struct {
	service usecase.SeatService
	log     *zap.Logger
}

func NewSeatHandler(service usecase.SeatService, log *zap.Logger) *SeatHandler {
	return &SeatHandler{
		service: service,
		log:     log.With(zap.String("handler", "seat")),
	}
}

// GetSeatsByHall handles GET /api/halls/{id}/seats
func (h *SeatHandler) GetSeatsByHall(w http.ResponseWriter, r *http.Request) {
	hallID := chi.URLParam(r, "id")
	if hallID == "" {
		utils.ResponseBadRequest(w, "Hall ID is required", nil)
		return
	}

	seats, err := h.service.GetSeatsByHall(r.Context(), hallID)
	if err != nil {
		handleServiceError(w, h.log, err, "get seats by hall")
		return
	}

	utils.ResponseSuccess(w, "Seats retrieved successfully", seats)
}

// GetSeatByID handles GET /api/seats/{id}
func (h *SeatHandler) GetSeatByID(w http.ResponseWriter, r *http.Request) {
	seatID := chi.URLParam(r, "id")
	if seatID == "" {
		utils.ResponseBadRequest(w, "Seat ID is required", nil)
		return
	}

	seat, err := h.service.GetSeatByID(r.Context(), seatID)
	if err != nil {
		handleServiceError(w, h.log, err, "get seat by ID")
		return
	}

	utils.ResponseSuccess(w, "Seat retrieved successfully", seat)
}

// CreateSeat handles POST /api/seats
func (h *SeatHandler) CreateSeat(w http.ResponseWriter, r *http.Request) {
	var req request.SeatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	seat, err := h.service.CreateSeat(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create seat")
		return
	}

	utils.ResponseCreated(w, "Seat created successfully", seat)
}

// UpdateSeat handles PUT /api/seats/{id}
func (h *SeatHandler) UpdateSeat(w http.ResponseWriter, r *http.Request) {
	seatID := chi.URLParam(r, "id")
	if seatID == "" {
		utils.ResponseBadRequest(w, "Seat ID is required", nil)
		return
	}

	var req request.SeatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	seat, err := h.service.UpdateSeat(r.Context(), seatID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update seat")
		return
	}

	utils.ResponseSuccess(w, "Seat updated successfully", seat)
}

// DeleteSeat handles DELETE /api/seats/{id}
func (h *SeatHandler) DeleteSeat(w http.ResponseWriter, r *http.Request) {
	seatID := chi.URLParam(r, "id")
	if seatID == "" {
		utils.ResponseBadRequest(w, "Seat ID is required", nil)
		return
	}

	if err := h.service.DeleteSeat(r.Context(), seatID); err != nil {
		handleServiceError(w, h.log, err, "delete seat")
		return
	}

	utils.ResponseSuccess(w, "Seat deleted successfully", nil)
}
