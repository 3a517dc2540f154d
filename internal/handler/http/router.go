package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rookgm/phoenixbot/internal/middleware"
)

// NewRouter mounts the read-only ops API
func NewRouter(catalog *CatalogHandler, stats *StatsHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(middleware.Logger)

	r.Get("/healthz", Health())
	r.Route("/api", func(r chi.Router) {
		r.Get("/offerings", catalog.ListOfferings())
		r.Get("/offerings/{id}", catalog.GetOffering())
		r.Get("/stats", stats.GetStats())
	})

	return r
}
