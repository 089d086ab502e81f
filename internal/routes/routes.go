package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/burnerlabs/gifbot-backend/internal/config"
	"github.com/burnerlabs/gifbot-backend/internal/handlers"
	"github.com/burnerlabs/gifbot-backend/internal/middleware"
	"github.com/burnerlabs/gifbot-backend/internal/services"
	"github.com/burnerlabs/gifbot-backend/internal/storage"
)

// SetupRoutes configures all API and web routes
func SetupRoutes(app *fiber.App, cfg *config.Config, store storage.Store,
	burnerService *services.BurnerService, giphyService *services.GiphyService,
	oauthService *services.OAuthService) {

	messageHandler := handlers.NewMessageHandler(store, burnerService, giphyService)
	oauthHandler := handlers.NewOAuthHandler(store, oauthService)
	homeHandler := handlers.NewHomeHandler(store, burnerService)

	// Web routes
	app.Get("/", homeHandler.Home)
	app.Get("/robots.txt", homeHandler.Robots)
	app.Get("/authorize", oauthHandler.Authorize)
	app.Get("/oauth/callback", oauthHandler.Callback)

	// ========== WEBHOOK ROUTES ==========
	// Signature validation only runs when a secret is configured and we
	// are not in development (ngrok and platform test consoles don't sign).
	if cfg.Webhook.Secret != "" && cfg.Server.Environment != "development" {
		app.Post("/messages", middleware.ValidateWebhookSignature(cfg.Webhook.Secret), messageHandler.HandleWebhook)
	} else {
		app.Post("/messages", messageHandler.HandleWebhook)
	}
}
