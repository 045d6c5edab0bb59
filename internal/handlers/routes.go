package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"github.com/BorisDmv/blog-service-demo/internal/config"
	"github.com/BorisDmv/blog-service-demo/internal/db"
	appmiddleware "github.com/BorisDmv/blog-service-demo/internal/middleware"
)

// NewRouter wires the HTTP routes around store. The returned func releases
// background resources held by the router and must be called on shutdown.
func NewRouter(cfg config.Config, store *db.Store, log logrus.FieldLogger) (http.Handler, func()) {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(appmiddleware.RequestLogger(log))
	r.Use(middleware.Recoverer)
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   cfg.CorsAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}).Handler)

	r.Get("/health", Health)

	postsHandler := NewPostsHandler(store, log, cfg.MaxBodyBytes)
	cleanup := func() {}

	r.Route("/posts", func(r chi.Router) {
		if cfg.RateLimitPerMinute > 0 {
			limiter := appmiddleware.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute, log)
			cleanup = limiter.Stop
			r.Use(limiter.Limit)
		}
		r.Post("/", postsHandler.Create)
		r.Get("/", postsHandler.List)
	})

	return r, cleanup
}
