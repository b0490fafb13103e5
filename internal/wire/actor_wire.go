package wire

import (
	"theatre-booking/internal/adaptor"
	"theatre-booking/pkg/middleware"
	"theatre-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireActor(
	r chi.Router,
	actorHandler *adaptor.ActorHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/actors - List actors (public)
	r.Get("/api/actors", actorHandler.GetActors)

	// GET /api/actors/{id} - Actor details (public)
	r.Get("/api/actors/{id}", actorHandler.GetActorByID)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/actors", func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))
		r.Use(middleware.Admin(log))

		// POST /api/admin/actors - Create actor (admin)
		r.Post("/", actorHandler.CreateActor)

		// PUT /api/admin/actors/{id} - Update actor (admin)
		r.Put("/{id}", actorHandler.UpdateActor)

		// DELETE /api/admin/actors/{id} - Delete actor (admin)
		r.Delete("/{id}", actorHandler.DeleteActor)
	})
}
