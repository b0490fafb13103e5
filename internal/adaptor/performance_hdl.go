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

type PerformanceHandler struct {
	service usecase.PerformanceService
	log     *zap.Logger
}

func NewPerformanceHandler(service usecase.PerformanceService, log *zap.Logger) *PerformanceHandler {
	return &PerformanceHandler{
		service: service,
		log:     log.With(zap.String("handler", "performance")),
	}
}

// GetPerformances handles GET /api/performances (public)
// Supports ?date=YYYY-MM-DD and ?play=<id> filters.
func (h *PerformanceHandler) GetPerformances(w http.ResponseWriter, r *http.Request) {
	req := &request.PaginatedRequest{}
	req.Page, req.PerPage = parsePagination(r)

	query := r.URL.Query()
	params := usecase.PerformanceListParams{
		Date:   query.Get("date"),
		PlayID: query.Get("play"),
	}

	performances, err := h.service.GetPerformances(r.Context(), req, params)
	if err != nil {
		handleServiceError(w, h.log, err, "get performances")
		return
	}

	utils.ResponseSuccess(w, "success", performances)
}

// GetPerformanceByID handles GET /api/performances/{id} (public)
func (h *PerformanceHandler) GetPerformanceByID(w http.ResponseWriter, r *http.Request) {
	performanceID := chi.URLParam(r, "id")
	if performanceID == "" {
		utils.ResponseBadRequest(w, "Performance ID is required", nil)
		return
	}

	performance, err := h.service.GetPerformanceByID(r.Context(), performanceID)
	if err != nil {
		handleServiceError(w, h.log, err, "get performance by ID")
		return
	}

	utils.ResponseSuccess(w, "success", performance)
}

// CreatePerformance handles POST /api/admin/performances (admin only)
func (h *PerformanceHandler) CreatePerformance(w http.ResponseWriter, r *http.Request) {
	var req request.PerformanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	performance, err := h.service.CreatePerformance(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create performance")
		return
	}

	utils.ResponseCreated(w, "success", performance)
}

// UpdatePerformance handles PUT /api/admin/performances/{id} (admin only)
func (h *PerformanceHandler) UpdatePerformance(w http.ResponseWriter, r *http.Request) {
	performanceID := chi.URLParam(r, "id")
	if performanceID == "" {
		utils.ResponseBadRequest(w, "Performance ID is required", nil)
		return
	}

	var req request.PerformanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	performance, err := h.service.UpdatePerformance(r.Context(), performanceID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update performance")
		return
	}

	utils.ResponseSuccess(w, "success", performance)
}

// DeletePerformance handles DELETE /api/admin/performances/{id} (admin only)
func (h *PerformanceHandler) DeletePerformance(w http.ResponseWriter, r *http.Request) {
	performanceID := chi.URLParam(r, "id")
	if performanceID == "" {
		utils.ResponseBadRequest(w, "Performance ID is required", nil)
		return
	}

	if err := h.service.DeletePerformance(r.Context(), performanceID); err != nil {
		handleServiceError(w, h.log, err, "delete performance")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
