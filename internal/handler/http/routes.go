package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Get("/api/auth/verify/{token}", h.verifyEmail)
		r.Post("/api/auth/login", h.login)
	})

	// routes behind the bearer-token gate
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/auth/protected", h.protected)
		r.Get("/api/auth/users", h.listUsers)
		r.Delete("/api/auth/users/{id}", h.deleteUser)
		r.Delete("/api/auth/users", h.deleteAllUsers)
	})

	return router
}
