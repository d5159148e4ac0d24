package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withMetrics)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Use(withGZip)

		r.Get("/api/session", h.getSession)
		r.Post("/api/session", h.login)

		r.Post("/api/accounts", h.register)

		r.Get("/api/theme", h.getTheme)
		r.Put("/api/theme", h.setTheme)
		r.Post("/api/theme/toggle", h.toggleTheme)

		r.Get("/api/readings", h.getReadings)
		r.Get("/api/readings/overview", h.getOverview)

		r.Get("/api/version", h.getServerVersion)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(withGZip, h.auth)

		r.Delete("/api/session", h.logout)
		r.Patch("/api/profile", h.updateProfile)
		r.Put("/api/profile/password", h.changePassword)
	})

	// promhttp negotiates its own compression
	if h.metrics != nil {
		router.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
