package wire

import (
	"theatre-booking/internal/adaptor"
	"theatre-booking/pkg/middleware"
	"theatre-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireHall(
	r chi.Router,
	hallHandler *adaptor.HallHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/theatre-halls - List halls with capacities (public)
	r.Get("/api/theatre-halls", hallHandler.GetHalls)

	// GET /api/theatre-halls/{id} - Hall details (public)
	r.Get("/api/theatre-halls/{id}", hallHandler.GetHallByID)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/theatre-halls", func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))
		r.Use(middleware.Admin(log))

		// POST /api/admin/theatre-halls - Create hall (admin)
		r.Post("/", hallHandler.CreateHall)

		// PUT /api/admin/theatre-halls/{id} - Update hall (admin)
		r.Put("/{id}", hallHandler.UpdateHall)

		// DELETE /api/admin/theatre-halls/{id} - Delete hall (admin)
		r.Delete("/{id}", hallHandler.DeleteHall)
	})
}
