// Command app runs the forecast HTTP API configured from the environment.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flosscast.app/internal/app"
	"github.com/joho/godotenv"
)

const shutdownTimeout = 30 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found or error loading it")
	}

	application, err := app.NewApplication()
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}

	cfg := application.Config()
	slog.Info("Server configuration",
		"port", cfg.Server.Port,
		"cacheType", cfg.Cache.Type.String(),
		"cacheDir", application.CacheDir(),
		"staleAfter", cfg.Cache.StaleAfter())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		slog.Info("Received shutdown signal...")

		// In-flight downloads finish their cache writes before the store closes
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := application.Shutdown(shutdownCtx); err != nil {
			slog.Error("Error during graceful shutdown", "error", err)
		}
	}()

	slog.Info("Starting FlossCast forecast API...")
	if err := application.Start(ctx); err != nil {
		slog.Error("Failed to start application", "error", err)
		_ = application.Close()
		os.Exit(1)
	}
	<-stopped
}
