package adaptor

import (
	"encoding/json"
	"net/http"

	"theatre-booking/internal/dto/request"
	"theatre-booking/internal/usecase"
	"theatre-booking/pkg/utils"

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

// GetHalls handles GET /api/theatre-halls (public)
func (h *HallHandler) GetHalls(w http.ResponseWriter, r *http.Request) {
	req := &request.PaginatedRequest{}
	req.Page, req.PerPage = parsePagination(r)

	halls, err := h.service.GetHalls(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get theatre halls")
		return
	}

	utils.ResponseSuccess(w, "success", halls)
}

// GetHallByID handles GET /api/theatre-halls/{id} (public)
func (h *HallHandler) GetHallByID(w http.ResponseWriter, r *http.Request) {
	hallID := chi.URLParam(r, "id")
	if hallID == "" {
		utils.ResponseBadRequest(w, "Theatre hall ID is required", nil)
		return
	}

	hall, err := h.service.GetHallByID(r.Context(), hallID)
	if err != nil {
		handleServiceError(w, h.log, err, "get theatre hall by ID")
		return
	}

	utils.ResponseSuccess(w, "success", hall)
}

// CreateHall handles POST /api/admin/theatre-halls (admin only)
func (h *HallHandler) CreateHall(w http.ResponseWriter, r *http.Request) {
	var req request.TheatreHallRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	hall, err := h.service.CreateHall(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create theatre hall")
		return
	}

	utils.ResponseCreated(w, "success", hall)
}

// UpdateHall handles PUT /api/admin/theatre-halls/{id} (admin only)
func (h *HallHandler) UpdateHall(w http.ResponseWriter, r *http.Request) {
	hallID := chi.URLParam(r, "id")
	if hallID == "" {
		utils.ResponseBadRequest(w, "Theatre hall ID is required", nil)
		return
	}

	var req request.TheatreHallRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	hall, err := h.service.UpdateHall(r.Context(), hallID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update theatre hall")
		return
	}

	utils.ResponseSuccess(w, "success", hall)
}

// DeleteHall handles DELETE /api/admin/theatre-halls/{id} (admin only)
func (h *HallHandler) DeleteHall(w http.ResponseWriter, r *http.Request) {
	hallID := chi.URLParam(r, "id")
	if hallID == "" {
		utils.ResponseBadRequest(w, "Theatre hall ID is required", nil)
		return
	}

	if err := h.service.DeleteHall(r.Context(), hallID); err != nil {
		handleServiceError(w, h.log, err, "delete theatre hall")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
