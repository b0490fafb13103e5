package wire

import (
	"theatre-booking/internal/adaptor"
	"theatre-booking/pkg/middleware"
	"theatre-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePlay(
	r chi.Router,
	playHandler *adaptor.PlayHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/plays - List plays with title/genre/actor filters (public)
	r.Get("/api/plays", playHandler.GetPlays)

	// GET /api/plays/{id} - Play details with genres and cast (public)
	r.Get("/api/plays/{id}", playHandler.GetPlayByID)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/plays", func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))
		r.Use(middleware.Admin(log))

		// POST /api/admin/plays - Create play (admin)
		r.Post("/", playHandler.CreatePlay)

		// PUT /api/admin/plays/{id} - Update play (admin)
		r.Put("/{id}", playHandler.UpdatePlay)

		// DELETE /api/admin/plays/{id} - Delete play (admin)
		r.Delete("/{id}", playHandler.DeletePlay)
	})
}
