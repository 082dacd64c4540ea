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
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/version", h.getServerVersion)
	})

	// routes that require a valid bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.With(h.uploadHashing).Post("/api/notes/", h.upload)
		r.Post("/api/notes/fetch", h.fetch)
		r.Put("/api/notes/update", h.update)
		r.Delete("/api/notes/delete", h.delete)

		r.Get("/api/sync/", h.getClientServerDiff)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
