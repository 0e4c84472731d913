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

type HallHandler struct {
	service usecase.HallService
	log     *zap.Logger
}

func NewHallHandler(service usecase.HallService, log *zap.Logger) *HallHandler {
	return &HallHandler{
		service: service,
		log:     log.With(zap.String("handler", "hall")),
	}
}

// GetHalls handles GET /api/halls
func (h *HallHandler) GetHalls(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	halls, err := h.service.GetHalls(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get halls")
		return
	}

	utils.ResponseSuccess(w, "Halls retrieved successfully", halls)
}

// GetHallByID handles GET /api/halls/{id}
func (h *HallHandler) GetHallByID(w http.ResponseWriter, r *http.Request) {
	hallID := chi.URLParam(r, "id")
	if hallID == "" {
		utils.ResponseBadRequest(w, "Hall ID is required", nil)
		return
	}

	hall, err := h.service.GetHallByID(r.Context(), hallID)
	if err != nil {
		handleServiceError(w, h.log, err, "get hall by ID")
		return
	}

	utils.ResponseSuccess(w, "Hall retrieved successfully", hall)
}

// CreateHall handles POST /api/halls
func (h *HallHandler) CreateHall(w http.ResponseWriter, r *http.Request) {
	var req request.HallRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	hall, err := h.service.CreateHall(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create hall")
		return
	}

	utils.ResponseCreated(w, "Hall created successfully", hall)
}

// UpdateHall handles PUT /api/halls/{id}
func (h *HallHandler) UpdateHall(w http.ResponseWriter, r *http.Request) {
	hallID := chi.URLParam(r, "id")
	if hallID == "" {
		utils.ResponseBadRequest(w, "Hall ID is required", nil)
		return
	}

	var req request.HallRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	hall, err := h.service.UpdateHall(r.Context(), hallID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update hall")
		return
	}

	utils.ResponseSuccess(w, "Hall updated successfully", hall)
}

// DeleteHall handles DELETE /api/halls/{id}
func (h *HallHandler) DeleteHall(w http.ResponseWriter, r *http.Request) {
	hallID := chi.URLParam(r, "id")
	if hallID == "" {
		utils.ResponseBadRequest(w, "Hall ID is required", nil)
		return
	}

	if err := h.service.DeleteHall(r.Context(), hallID); err != nil {
		handleServiceError(w, h.log, err, "delete hall")
		return
	}

	utils.ResponseSuccess(w, "Hall deleted successfully", nil)
}
