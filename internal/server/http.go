package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/Anvoria/webfinger-proxy/internal/config"
	"github.com/Anvoria/webfinger-proxy/internal/domain/webfinger"
	"github.com/Anvoria/webfinger-proxy/internal/utils"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

const shutdownTimeout = 5 * time.Second

// NewApp builds the Fiber app with its error handler, middleware and routes.
func NewApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "webfinger-proxy",
		DisableStartupMessage: true,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var apiErr *utils.APIError
			if errors.As(err, &apiErr) {
				return utils.ErrorResponse(c, apiErr)
			}

			var e *fiber.Error
			if errors.As(err, &e) {
				return utils.ErrorResponse(c, utils.NewAPIError(
					"HTTP_ERROR",
					e.Message,
					e.Code,
				))
			}

			slog.Error("Unhandled request error", "error", err, "path", c.Path())
			return utils.ErrorResponse(c, utils.ErrInternalServer)
		},
	})

	app.Use(recover.New())

	app.Use(requestid.New(requestid.Config{
		Generator:  uuid.NewString,
		ContextKey: webfinger.RequestIDKey,
	}))

	// Any origin may perform discovery
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,HEAD,OPTIONS",
	}))

	SetupRoutes(app)

	return app
}

// Start initializes logging, builds the app and serves on env.Address() until
// ctx is cancelled, then shuts down gracefully.
// It returns an error if the listener cannot be bound or fails while serving.
func Start(ctx context.Context, env *config.Environment) error {
	initLogger(env.LogLevel)

	app := NewApp()

	slog.Info("Starting WebFinger proxy", "domain", env.Domain)

	addr := env.Address()
	listenErr := make(chan error, 1)
	go func() {
		slog.Info("Server starting", "address", addr)
		listenErr <- app.Listen(addr)
	}()

	select {
	case err := <-listenErr:
		if err != nil {
			slog.Error("Failed to start server", "error", err)
			return fmt.Errorf("failed to serve on %s: %w", addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	slog.Info("Server stopped")
	return nil
}

func initLogger(level string) {
	opts := &slog.HandlerOptions{
		Level: config.ParseLogLevel(level),
	}

	handler := slog.NewTextHandler(os.Stdout, opts)
	slog.SetDefault(slog.New(handler))
}
