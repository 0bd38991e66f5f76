package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"flosscast.app/internal/adapters/api"
	"flosscast.app/internal/adapters/infrastructure"
	"flosscast.app/internal/config"
	"flosscast.app/internal/core/forecast"
	"flosscast.app/internal/ports"
	"github.com/gin-gonic/gin"
)

type Application struct {
	config *config.Config
	deps   *DependencyContainer

	// Use Cases
	forecastUseCase *forecast.UseCase
	forecastLoader  *forecast.Loader

	// Adapters
	httpServer *http.Server
	router     *gin.Engine

	// Infrastructure
	ports     *ports.ApplicationPorts
	closeOnce sync.Once
	closeErr  error
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	deps, err := NewDependencyContainer(cfg, DependencyOptions{})
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	app, err := NewApplicationWithDependencies(cfg, deps)
	if err != nil {
		_ = deps.Cleanup()
		return nil, err
	}
	return app, nil
}

// NewApplicationWithDependencies creates an application with provided dependencies (for testing)
func NewApplicationWithDependencies(cfg *config.Config, deps *DependencyContainer) (*Application, error) {
	app := &Application{
		config: cfg,
		deps:   deps,
		ports:  deps.ApplicationPorts(),
	}

	if err := app.initializeUseCases(); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	slog.Info("Initializing use cases...")

	forecastUseCase, err := forecast.NewUseCase(forecast.UseCaseDependencies{
		Source:     a.deps.ForecastSource(),
		Store:      a.ports.DocumentStore,
		Logger:     a.ports.Logger,
		Metrics:    a.ports.ForecastMetrics,
		StaleAfter: a.ports.ConfigProvider.GetCacheConfig().StaleAfter,
	})
	if err != nil {
		return fmt.Errorf("create forecast use case: %w", err)
	}
	a.forecastUseCase = forecastUseCase

	forecastLoader, err := forecast.NewLoader(forecast.LoaderDependencies{
		Forecasts: a.forecastUseCase,
		Logger:    a.ports.Logger,
		Metrics:   a.ports.ForecastMetrics,
	})
	if err != nil {
		return fmt.Errorf("create forecast loader: %w", err)
	}
	a.forecastLoader = forecastLoader

	slog.Info("Use cases initialized successfully")
	return nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	systemHealthChecker := infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		CacheChecker:    infrastructure.NewDocumentStoreHealthChecker(a.ports.DocumentStore),
		UpstreamChecker: infrastructure.NewUpstreamHealthChecker(a.ports.ConfigProvider.GetOpenMeteoConfig()),
		ConfigProvider:  a.ports.ConfigProvider,
	})

	serverConfig := a.ports.ConfigProvider.GetServerConfig()
	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config: api.ServerConfig{
			Port:     serverConfig.Port,
			CacheDir: a.CacheDir(),
		},
		ForecastUseCase: a.forecastUseCase,
		ForecastLoader:  a.forecastLoader,
		CitySearcher:    a.deps.CitySearcher(),
		HealthChecker:   systemHealthChecker,
		Gatherer:        a.deps.Registry(),
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	// Store router for testing access
	a.router = httpAdapter.GetRouter()

	a.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", serverConfig.Port),
		Handler:      a.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	slog.Info("Adapters initialized successfully")
	return nil
}

func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting HTTP server", "port", a.config.Server.Port, "cacheDir", a.CacheDir())
	if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}
	return nil
}

func (a *Application) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}

	if err := a.Close(); err != nil {
		slog.Warn("Error releasing resources", "error", err)
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Close releases the document store and log files without touching the
// HTTP server. Commands that never serve use it instead of Shutdown.
func (a *Application) Close() error {
	a.closeOnce.Do(func() {
		a.closeErr = a.deps.Cleanup()
	})
	return a.closeErr
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// CacheDir returns the directory of the cache document all requests share
func (a *Application) CacheDir() string {
	return a.config.Cache.Dir
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.router
}

func (a *Application) ForecastUseCase() *forecast.UseCase {
	return a.forecastUseCase
}

func (a *Application) ForecastLoader() *forecast.Loader {
	return a.forecastLoader
}

func (a *Application) CitySearcher() forecast.CitySearcher {
	return a.deps.CitySearcher()
}
