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
		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/auth/providers", h.providers)
		r.Get("/api/auth/login/{provider}", h.loginURL)
		r.Get("/auth/callback", h.callback)
	})

	// routes requiring a valid session token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/auth/me", h.me)
		r.Post("/api/auth/logout", h.logout)

		r.Get("/api/documents", h.listDocuments)
		r.Get("/api/documents/{name}/{date}", h.getDocument)
		r.Get("/api/documents/{name}/{date}/comments", h.listComments)
		r.Post("/api/documents/{name}/{date}/comments", h.createComment)

		r.Put("/api/comments/{id}", h.updateComment)
		r.Delete("/api/comments/{id}", h.deleteComment)
		r.Post("/api/comments/{id}/resolve", h.resolveComment)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
