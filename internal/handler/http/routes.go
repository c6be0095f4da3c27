package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/ping", h.ping)
		r.Get("/api/version", h.getVersion)
		r.Handle("/metrics", promhttp.Handler())
	})

	// routes requiring a device credential
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/api/sync", h.postSync)
		r.Get("/api/config", h.getConfig)
		r.Get("/api/localities", h.getLocalities)
		r.Get("/api/localities/search", h.searchLocalities)
	})

	return router
}
