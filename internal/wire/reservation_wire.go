package wire

import (
	"theatre-booking/internal/adaptor"
	"theatre-booking/pkg/middleware"
	"theatre-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReservation(
	r chi.Router,
	reservationHandler *adaptor.ReservationHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Route("/api/reservations", func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))

		// POST /api/reservations - Book seats, all-or-nothing (authenticated)
		r.Post("/", reservationHandler.CreateReservation)

		// GET /api/reservations - List the caller's reservations (authenticated)
		r.Get("/", reservationHandler.GetUserReservations)

		// GET /api/reservations/{id} - Reservation details (owner or admin)
		r.Get("/{id}", reservationHandler.GetReservationByID)

		// DELETE /api/reservations/{id} - Cancel reservation, frees its seats (owner or admin)
		r.Delete("/{id}", reservationHandler.DeleteReservation)
	})
}
