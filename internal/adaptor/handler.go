package adaptor

import (
	"errors"
	"net/http"

	"theatre-booking/internal/data/entity"
	"theatre-booking/internal/usecase"
	"theatre-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth        *AuthHandler
	Genre       *GenreHandler
	Actor       *ActorHandler
	Play        *PlayHandler
	Hall        *HallHandler
	Performance *PerformanceHandler
	Reservation *ReservationHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(service.Auth, log),
		Genre:       NewGenreHandler(service.Genre, log),
		Actor:       NewActorHandler(service.Actor, log),
		Play:        NewPlayHandler(service.Play, log),
		Hall:        NewHallHandler(service.Hall, log),
		Performance: NewPerformanceHandler(service.Performance, log),
		Reservation: NewReservationHandler(service.Reservation, log),
	}
}

// handleServiceError maps service errors to HTTP responses. Every handler
// funnels its error path through here so the status mapping stays in one
// place.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var validationErr *entity.ValidationError
	var notFoundErr *entity.NotFoundError
	var seatConflictErr *entity.SeatConflictError

	switch {
	case errors.As(err, &validationErr):
		log.Warn(operation+" validation failed",
			zap.Any("errors", validationErr.Fields),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, "Validation failed", validationErr.Fields)

	case errors.As(err, &notFoundErr):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, notFoundErr.Error())

	case errors.As(err, &seatConflictErr):
		log.Warn(operation+" failed - seat conflict",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, seatConflictErr.Error())

	case errors.Is(err, entity.ErrUnauthorized):
		log.Warn(operation+" failed - unauthorized",
			zap.String("operation", operation))
		utils.ResponseUnauthorized(w, "Invalid credentials")

	case errors.Is(err, entity.ErrForbidden):
		log.Warn(operation+" failed - forbidden",
			zap.String("operation", operation))
		utils.ResponseForbidden(w, "Insufficient privileges")

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// parsePagination reads page/per_page query parameters with sane defaults.
func parsePagination(r *http.Request) (page, perPage int) {
	query := r.URL.Query()
	page = utils.ParseInt(query.Get("page"), 1)
	perPage = utils.ParseInt(query.Get("per_page"), 10)
	return page, perPage
}
