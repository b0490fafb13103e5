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

type GenreHandler struct {
	service usecase.GenreService
	log     *zap.Logger
}

func NewGenreHandler(service usecase.GenreService, log *zap.Logger) *GenreHandler {
	return &GenreHandler{
		service: service,
		log:     log.With(zap.String("handler", "genre")),
	}
}

// GetGenres handles GET /api/genres (public)
func (h *GenreHandler) GetGenres(w http.ResponseWriter, r *http.Request) {
	req := &request.PaginatedRequest{}
	req.Page, req.PerPage = parsePagination(r)

	genres, err := h.service.GetGenres(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get genres")
		return
	}

	utils.ResponseSuccess(w, "success", genres)
}

// GetGenreByID handles GET /api/genres/{id} (public)
func (h *GenreHandler) GetGenreByID(w http.ResponseWriter, r *http.Request) {
	genreID := chi.URLParam(r, "id")
	if genreID == "" {
		utils.ResponseBadRequest(w, "Genre ID is required", nil)
		return
	}

	genre, err := h.service.GetGenreByID(r.Context(), genreID)
	if err != nil {
		handleServiceError(w, h.log, err, "get genre by ID")
		return
	}

	utils.ResponseSuccess(w, "success", genre)
}

// CreateGenre handles POST /api/admin/genres (admin only)
func (h *GenreHandler) CreateGenre(w http.ResponseWriter, r *http.Request) {
	var req request.GenreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	genre, err := h.service.CreateGenre(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create genre")
		return
	}

	utils.ResponseCreated(w, "success", genre)
}

// UpdateGenre handles PUT /api/admin/genres/{id} (admin only)
func (h *GenreHandler) UpdateGenre(w http.ResponseWriter, r *http.Request) {
	genreID := chi.URLParam(r, "id")
	if genreID == "" {
		utils.ResponseBadRequest(w, "Genre ID is required", nil)
		return
	}

	var req request.GenreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	genre, err := h.service.UpdateGenre(r.Context(), genreID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update genre")
		return
	}

	utils.ResponseSuccess(w, "success", genre)
}

// DeleteGenre handles DELETE /api/admin/genres/{id} (admin only)
func (h *GenreHandler) DeleteGenre(w http.ResponseWriter, r *http.Request) {
	genreID := chi.URLParam(r, "id")
	if genreID == "" {
		utils.ResponseBadRequest(w, "Genre ID is required", nil)
		return
	}

	if err := h.service.DeleteGenre(r.Context(), genreID); err != nil {
		handleServiceError(w, h.log, err, "delete genre")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
