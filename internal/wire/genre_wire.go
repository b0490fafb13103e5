package wire

import (
	"theatre-booking/internal/adaptor"
	"theatre-booking/pkg/middleware"
	"theatre-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireGenre(
	r chi.Router,
	genreHandler *adaptor.GenreHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/genres - List genres (public)
	r.Get("/api/genres", genreHandler.GetGenres)

	// GET /api/genres/{id} - Genre details (public)
	r.Get("/api/genres/{id}", genreHandler.GetGenreByID)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/genres", func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))
		r.Use(middleware.Admin(log))

		// POST /api/admin/genres - Create genre (admin)
		r.Post("/", genreHandler.CreateGenre)

		// PUT /api/admin/genres/{id} - Update genre (admin)
		r.Put("/{id}", genreHandler.UpdateGenre)

		// DELETE /api/admin/genres/{id} - Delete genre (admin)
		r.Delete("/{id}", genreHandler.DeleteGenre)
	})
}
