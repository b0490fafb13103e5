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

type ActorHandler struct {
	service usecase.ActorService
	log     *zap.Logger
}

func NewActorHandler(service usecase.ActorService, log *zap.Logger) *ActorHandler {
	return &ActorHandler{
		service: service,
		log:     log.With(zap.String("handler", "actor")),
	}
}

// GetActors handles GET /api/actors (public)
func (h *ActorHandler) GetActors(w http.ResponseWriter, r *http.Request) {
	req := &request.PaginatedRequest{}
	req.Page, req.PerPage = parsePagination(r)

	actors, err := h.service.GetActors(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get actors")
		return
	}

	utils.ResponseSuccess(w, "success", actors)
}

// GetActorByID handles GET /api/actors/{id} (public)
func (h *ActorHandler) GetActorByID(w http.ResponseWriter, r *http.Request) {
	actorID := chi.URLParam(r, "id")
	if actorID == "" {
		utils.ResponseBadRequest(w, "Actor ID is required", nil)
		return
	}

	actor, err := h.service.GetActorByID(r.Context(), actorID)
	if err != nil {
		handleServiceError(w, h.log, err, "get actor by ID")
		return
	}

	utils.ResponseSuccess(w, "success", actor)
}

// CreateActor handles POST /api/admin/actors (admin only)
func (h *ActorHandler) CreateActor(w http.ResponseWriter, r *http.Request) {
	var req request.ActorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	actor, err := h.service.CreateActor(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create actor")
		return
	}

	utils.ResponseCreated(w, "success", actor)
}

// UpdateActor handles PUT /api/admin/actors/{id} (admin only)
func (h *ActorHandler) UpdateActor(w http.ResponseWriter, r *http.Request) {
	actorID := chi.URLParam(r, "id")
	if actorID == "" {
		utils.ResponseBadRequest(w, "Actor ID is required", nil)
		return
	}

	var req request.ActorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	actor, err := h.service.UpdateActor(r.Context(), actorID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update actor")
		return
	}

	utils.ResponseSuccess(w, "success", actor)
}

// DeleteActor handles DELETE /api/admin/actors/{id} (admin only)
func (h *ActorHandler) DeleteActor(w http.ResponseWriter, r *http.Request) {
	actorID := chi.URLParam(r, "id")
	if actorID == "" {
		utils.ResponseBadRequest(w, "Actor ID is required", nil)
		return
	}

	if err := h.service.DeleteActor(r.Context(), actorID); err != nil {
		handleServiceError(w, h.log, err, "delete actor")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
