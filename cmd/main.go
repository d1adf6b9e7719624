package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Anvoria/webfinger-proxy/internal/config"
	"github.com/Anvoria/webfinger-proxy/internal/server"
	"github.com/joho/godotenv"
)

func main() {
	// A .env file is optional; real deployments set the environment directly.
	dotenvErr := godotenv.Load()

	envConfig := config.LoadEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if dotenvErr != nil && !errors.Is(dotenvErr, fs.ErrNotExist) {
		slog.Warn("Failed to load .env file", "error", dotenvErr)
	}

	if err := server.Start(ctx, envConfig); err != nil {
		slog.Error("Server exited", "error", err)
		os.Exit(1)
	}
}
