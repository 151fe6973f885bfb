package server

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"chatjpt/internal/chat"
	"chatjpt/internal/handlers"
	"chatjpt/internal/handlers/api"
	"chatjpt/internal/middleware"
)

// Deps are the collaborators the routes are served from.
type Deps struct {
	Chat     *chat.Service
	DB       handlers.Pinger     // nil without a database
	Gatherer prometheus.Gatherer // nil disables /metrics
}

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(ctx context.Context, deps Deps) error {
	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(s.Cfg.AuthEnabled())

	// Initialize handlers
	chatHandler := handlers.NewChatHandler(deps.Chat, s.Cfg)
	probeHandler := handlers.NewProbeHandler(deps.Chat, deps.DB)
	apiChatHandler := api.NewChatHandler(deps.Chat)

	// Probes and metrics
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	if deps.Gatherer != nil {
		s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	// Auth routes - only when OIDC is configured
	if s.Cfg.AuthEnabled() {
		authHandler, err := handlers.NewAuthHandler(ctx, s.Cfg)
		if err != nil {
			return err
		}
		s.App.Get("/login", chatHandler.Login)
		s.App.Get("/auth/login", authHandler.Login)
		s.App.Get("/auth/callback", authHandler.Callback)
		s.App.Get("/auth/logout", authHandler.Logout)
	} else {
		log.Println("OIDC authentication is disabled. Set OIDC_ISSUER to enable.")
	}

	// Conversation window
	s.App.Get("/", authMiddleware.RequireAuth, chatHandler.Index)
	s.App.Post("/chat", authMiddleware.RequireAuth, chatHandler.Send)

	// JSON API
	v1 := s.App.Group("/api/v1", authMiddleware.RequireAuth)
	v1.Post("/respond", apiChatHandler.Respond)
	v1.Get("/history", apiChatHandler.History)
	v1.Get("/keywords", apiChatHandler.Keywords)

	return nil
}
