// Command flosscast reads and maintains the forecast cache from the shell
// and serves the HTTP API.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found or error loading it")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand(loadServices).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
