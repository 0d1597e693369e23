package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/anonbb/anonbb/internal/handler"
	"github.com/anonbb/anonbb/internal/middleware/metrics"
)

// New wires the full HTTP surface: the original board API under /api plus
// health and metrics endpoints.
func New(h *handler.Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Get("/health", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/boards", h.GetBoards)

		r.Route("/threads/{board}", func(r chi.Router) {
			r.Post("/", h.CreateThread)
			r.Get("/", h.GetThreads)
			r.Delete("/", h.DeleteThread)
			r.Put("/", h.ReportThread)
		})

		r.Route("/replies/{board}", func(r chi.Router) {
			r.Post("/", h.CreateReply)
			r.Get("/", h.GetThread)
			r.Delete("/", h.RedactReply)
			r.Put("/", h.ReportReply)
		})
	})

	return r
}
