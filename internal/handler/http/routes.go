package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withLogging)

	router.Get("/api/sync/status", h.getSyncStatus)
	router.Get("/api/sync/metadata", h.getSyncMetadata)
	router.Post("/api/sync/run", h.runSync)
	router.Post("/api/sync/push", h.runPush)
	router.Post("/api/sync/reset", h.resetStatus)

	return router
}
