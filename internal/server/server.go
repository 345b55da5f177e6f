package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gamescores/apiserver/config"
	"github.com/gamescores/apiserver/internal/auth"
	"github.com/gamescores/apiserver/internal/handlers"
	"github.com/gamescores/apiserver/internal/services"
	"github.com/gamescores/apiserver/internal/store"
	"github.com/gamescores/apiserver/types"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// seedUser is the development account installed on every boot. Both
// stores are in-memory and reset with the process.
var seedUser = types.User{
	UserHandle: "johnDoe",
	Password:   "password123",
}

// Server wraps the HTTP server and router.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
}

// New constructs a Server with basic middleware and defaults.
func New(ctx context.Context, cfg config.Config) (*Server, error) {
	userStore := store.NewUserStore()
	highscoreStore := store.NewHighscoreStore()

	if _, err := userStore.Create(ctx, seedUser); err != nil {
		return nil, fmt.Errorf("seed user: %w", err)
	}

	userService := services.NewUserService(userStore)
	highscoreService := services.NewHighscoreService(highscoreStore)

	tokens := auth.NewTokens(cfg.JWTSecret)
	authMiddleware := handlers.RequireAuth(tokens, userService)

	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		middleware.Timeout(60*time.Second),
	)
	router.Get("/healthz", handlers.Healthz)
	handlers.AuthRouter(router, userService, tokens)
	router.Route("/high-scores", func(r chi.Router) {
		handlers.HighscoreRouter(r, highscoreService, authMiddleware)
	})

	port := cfg.ServerPort
	if port == 0 {
		port = 3000
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		router:     router,
	}, nil
}

// Router exposes the chi router for route registration and tests.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown attempts a graceful shutdown.
func (s *Server) Shutdown() error {
	return s.httpServer.Close()
}
