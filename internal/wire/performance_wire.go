package wire

import (
	"theatre-booking/internal/adaptor"
	"theatre-booking/pkg/middleware"
	"theatre-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePerformance(
	r chi.Router,
	performanceHandler *adaptor.PerformanceHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/performances - List performances with availability (public)
	r.Get("/api/performances", performanceHandler.GetPerformances)

	// GET /api/performances/{id} - Performance details with taken places (public)
	r.Get("/api/performances/{id}", performanceHandler.GetPerformanceByID)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/performances", func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))
		r.Use(middleware.Admin(log))

		// POST /api/admin/performances - Schedule performance (admin)
		r.Post("/", performanceHandler.CreatePerformance)

		// PUT /api/admin/performances/{id} - Update performance (admin)
		r.Put("/{id}", performanceHandler.UpdatePerformance)

		// DELETE /api/admin/performances/{id} - Delete performance (admin)
		r.Delete("/{id}", performanceHandler.DeletePerformance)
	})
}
