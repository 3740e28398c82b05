package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/version", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		// live query: no compression, no request timeout
		r.Get("/api/internships/live", h.liveInternships)

		r.Group(func(r chi.Router) {
			r.Use(withGZip)
			if h.requestTimeout > 0 {
				r.Use(middleware.Timeout(h.requestTimeout))
			}

			r.Get("/api/users/{id}", h.getUser)

			r.Get("/api/internships", h.listInternships)
			r.Post("/api/internships", h.createInternship)
			r.Get("/api/internships/{id}", h.getInternship)
			r.Put("/api/internships/{id}", h.updateInternship)
			r.Delete("/api/internships/{id}", h.deleteInternship)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
