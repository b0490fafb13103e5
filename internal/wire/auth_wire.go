package wire

import (
	"theatre-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// POST /api/register - Create customer account (public)
	r.Post("/api/register", authHandler.Register)

	// POST /api/login - Exchange credentials for a JWT (public)
	r.Post("/api/login", authHandler.Login)
}
