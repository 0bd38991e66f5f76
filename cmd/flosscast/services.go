package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"flosscast.app/internal/adapters/api"
	"flosscast.app/internal/app"
	"flosscast.app/internal/core/forecast"
)

const shutdownTimeout = 30 * time.Second

// services is what the commands work with
type services struct {
	Forecasts api.ForecastUseCase
	Loader    api.ForecastLoader
	Cities    forecast.CitySearcher
	CacheDir  string
	Serve     func(ctx context.Context) error
	Close     func() error
}

func loadServices() (*services, error) {
	application, err := app.NewApplication()
	if err != nil {
		return nil, fmt.Errorf("initialize application: %w", err)
	}

	return &services{
		Forecasts: application.ForecastUseCase(),
		Loader:    application.ForecastLoader(),
		Cities:    application.CitySearcher(),
		CacheDir:  application.CacheDir(),
		Serve: func(ctx context.Context) error {
			shutdownDone := make(chan struct{})
			go func() {
				defer close(shutdownDone)
				<-ctx.Done()
				slog.Info("Received shutdown signal...")

				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				if err := application.Shutdown(shutdownCtx); err != nil {
					slog.Error("Error during graceful shutdown", "error", err)
				}
			}()
			if err := application.Start(ctx); err != nil {
				return err
			}
			<-shutdownDone
			return nil
		},
		Close: application.Close,
	}, nil
}
