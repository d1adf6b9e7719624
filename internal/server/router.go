package server

import (
	"github.com/Anvoria/webfinger-proxy/internal/config"
	"github.com/Anvoria/webfinger-proxy/internal/domain/webfinger"
	"github.com/gofiber/fiber/v2"
)

// SetupRoutes registers the health check and the WebFinger discovery endpoint.
// The WebFinger service resolves DOMAIN on every request.
func SetupRoutes(app *fiber.App) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("OK")
	})

	webfingerService := webfinger.NewService(config.GetDomain)
	webfingerHandler := webfinger.NewHandler(webfingerService)

	app.Get("/.well-known/webfinger", webfingerHandler.WebFinger)
}
