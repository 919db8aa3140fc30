package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
)

// RouterConfig carries the router settings that come from configuration.
type RouterConfig struct {
	// Token guards the session routes. Empty disables auth.
	Token string
	// CORSOrigins lists the front-end origins allowed to call the API.
	CORSOrigins []string
	// RateLimit is requests per minute per IP. Zero means 60.
	RateLimit int
}

// NewRouter builds and returns the Chi router with all routes configured.
// Catalog and health routes are public; session routes require bearer auth
// when a token is configured.
func NewRouter(handlers *Handlers, cfg RouterConfig, db dbPinger, redisClient redisPinger, log *slog.Logger) *chi.Mux {
	limit := cfg.RateLimit
	if limit <= 0 {
		limit = 60
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(NewSlogLogger(log))
	r.Use(middleware.Recoverer)
	r.Use(NewCORSHandler(cfg.CORSOrigins))
	r.Use(httprate.LimitByIP(limit, time.Minute))

	r.Get("/api/v1/health", HealthHandlerFunc(db, redisClient, log))

	r.Route("/api/v1/destinations", func(r chi.Router) {
		r.Get("/", handlers.ListDestinations)
		r.Get("/index", handlers.DestinationIndex)
		r.Get("/search", handlers.SearchDestinations)
		r.Get("/{id}", handlers.GetDestination)
	})

	r.Get("/api/v1/years", handlers.Years)
	r.Get("/api/v1/years/{year}", handlers.DestinationsInYear)

	r.Get("/api/v1/journeys", handlers.ListJourneys)
	r.Get("/api/v1/journeys/{id}", handlers.GetJourney)

	r.Route("/api/v1/sessions", func(r chi.Router) {
		if cfg.Token != "" {
			r.Use(BearerAuth(cfg.Token))
		}
		r.Post("/", handlers.CreateSession)
		r.Get("/{id}", handlers.GetSession)
		r.Post("/{id}/events", handlers.ApplyEvent)
		r.Delete("/{id}", handlers.DeleteSession)
	})

	return r
}

// Ensure chi.Mux implements http.Handler.
var _ http.Handler = (*chi.Mux)(nil)
