package router

import (
	"net/http"
	"time"

	"flavors/backend/internal/config"
	"flavors/backend/internal/database"
	"flavors/backend/internal/httpapi/handlers"
	appmw "flavors/backend/internal/httpapi/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func New(store *database.FlavorStore, cfg config.Settings) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(chimw.StripSlashes)
	r.Use(chimw.Logger)
	r.Use(chimw.Timeout(60 * time.Second))
	r.Use(appmw.RequestID)
	r.Use(appmw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	systemHandler := handlers.NewSystemHandler(store)
	flavorHandler := handlers.NewFlavorHandler(store)

	r.Get("/", systemHandler.Root)
	r.Get("/health", systemHandler.Health)

	r.Route("/api", func(api chi.Router) {
		api.Route("/flavors", func(flavors chi.Router) {
			flavors.Get("/", flavorHandler.List)
			flavors.Post("/", flavorHandler.Create)
			flavors.Get("/{flavorID}", flavorHandler.Get)
			flavors.Put("/{flavorID}", flavorHandler.Update)
			flavors.Delete("/{flavorID}", flavorHandler.Delete)
		})
	})

	return r
}
