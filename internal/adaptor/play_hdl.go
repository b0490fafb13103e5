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

type PlayHandler struct {
	service usecase.PlayService
	log     *zap.Logger
}

func NewPlayHandler(service usecase.PlayService, log *zap.Logger) *PlayHandler {
	return &PlayHandler{
		service: service,
		log:     log.With(zap.String("handler", "play")),
	}
}

// GetPlays handles GET /api/plays (public)
// Supports ?title= substring match and ?genres=/&actors= comma-separated
// id filters.
func (h *PlayHandler) GetPlays(w http.ResponseWriter, r *http.Request) {
	req := &request.PaginatedRequest{}
	req.Page, req.PerPage = parsePagination(r)

	query := r.URL.Query()
	params := usecase.PlayListParams{
		Title:    query.Get("title"),
		GenreIDs: utils.ParseUUIDList(query.Get("genres")),
		ActorIDs: utils.ParseUUIDList(query.Get("actors")),
	}

	plays, err := h.service.GetPlays(r.Context(), req, params)
	if err != nil {
		handleServiceError(w, h.log, err, "get plays")
		return
	}

	utils.ResponseSuccess(w, "success", plays)
}

// GetPlayByID handles GET /api/plays/{id} (public)
func (h *PlayHandler) GetPlayByID(w http.ResponseWriter, r *http.Request) {
	playID := chi.URLParam(r, "id")
	if playID == "" {
		utils.ResponseBadRequest(w, "Play ID is required", nil)
		return
	}

	play, err := h.service.GetPlayByID(r.Context(), playID)
	if err != nil {
		handleServiceError(w, h.log, err, "get play by ID")
		return
	}

	utils.ResponseSuccess(w, "success", play)
}

// CreatePlay handles POST /api/admin/plays (admin only)
func (h *PlayHandler) CreatePlay(w http.ResponseWriter, r *http.Request) {
	var req request.PlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	play, err := h.service.CreatePlay(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create play")
		return
	}

	utils.ResponseCreated(w, "success", play)
}

// UpdatePlay handles PUT /api/admin/plays/{id} (admin only)
func (h *PlayHandler) UpdatePlay(w http.ResponseWriter, r *http.Request) {
	playID := chi.URLParam(r, "id")
	if playID == "" {
		utils.ResponseBadRequest(w, "Play ID is required", nil)
		return
	}

	var req request.PlayUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	play, err := h.service.UpdatePlay(r.Context(), playID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update play")
		return
	}

	utils.ResponseSuccess(w, "success", play)
}

// DeletePlay handles DELETE /api/admin/plays/{id} (admin only)
func (h *PlayHandler) DeletePlay(w http.ResponseWriter, r *http.Request) {
	playID := chi.URLParam(r, "id")
	if playID == "" {
		utils.ResponseBadRequest(w, "Play ID is required", nil)
		return
	}

	if err := h.service.DeletePlay(r.Context(), playID); err != nil {
		handleServiceError(w, h.log, err, "delete play")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
