// Package api exposes the gateway's HTTP surface: the inventory endpoints
// the single-page client talks to, plus the identity endpoints.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/akarpovs/stockkeeper/internal/logging"
	"github.com/akarpovs/stockkeeper/internal/server/config"
	"github.com/akarpovs/stockkeeper/internal/server/services"
)

// RouterConfig holds the dependencies for building the router.
type RouterConfig struct {
	Auth   *config.AuthConfig
	Items  *services.ItemService
	Users  *services.UserService
	Logger logging.Logger
}

// NewRouter builds the chi router. Reads accept an API key or a session
// token; writes require a session token.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(Recovery(cfg.Logger))
	r.Use(RequestID)
	r.Use(Logging(cfg.Logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID", "X-API-Key"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	items := NewItemHandler(cfg.Items, cfg.Logger)
	auth := NewAuthHandler(cfg.Users, cfg.Logger)

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", auth.SignUp)
		r.Post("/signin", auth.SignIn)
		r.Post("/signout", auth.SignOut)

		r.Group(func(r chi.Router) {
			r.Use(BearerAuth(cfg.Auth.JWTSecret))
			r.Get("/me", auth.Me)
		})
	})

	// Reads: API key or session token
	r.Group(func(r chi.Router) {
		r.Use(ReadAuth(cfg.Auth.JWTSecret, cfg.Auth.APIKey))
		r.Get("/items/id", items.List)
	})

	// Writes: session token only
	r.Group(func(r chi.Router) {
		r.Use(BearerAuth(cfg.Auth.JWTSecret))
		r.Post("/items", items.Upsert)
	})

	return r
}
