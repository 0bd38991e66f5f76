// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to use cases
package api

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"flosscast.app/internal/core/forecast"
	"flosscast.app/internal/ports"
	"flosscast.app/pkg/errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RequestIDHeader carries the id assigned to every request
const RequestIDHeader = "X-Request-ID"

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port int
	// CacheDir is the cache document every request works on
	CacheDir string
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router        *gin.Engine
	config        ServerConfig
	forecasts     ForecastUseCase
	loader        ForecastLoader
	cities        forecast.CitySearcher
	healthChecker ports.SystemHealthChecker
	gatherer      prometheus.Gatherer
}

// Use case interfaces that the HTTP adapter depends on
type ForecastUseCase interface {
	GetForecast(ctx context.Context, params forecast.GetForecastParams) (*forecast.Forecast, error)
	ResetCache(ctx context.Context, dir string) error
	CachedKeys(ctx context.Context, dir string) ([]string, error)
}

type ForecastLoader interface {
	LoadForecastForCity(ctx context.Context, dir string, city forecast.City, force bool) (forecast.ForecastUpdate, error)
	LoadForecastsForCities(ctx context.Context, dir string, cities []forecast.City, force bool) (forecast.ForecastsUpdate, error)
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config          ServerConfig
	ForecastUseCase ForecastUseCase
	ForecastLoader  ForecastLoader
	CitySearcher    forecast.CitySearcher
	HealthChecker   ports.SystemHealthChecker
	// Gatherer backs /metrics. Defaults to the global registry.
	Gatherer prometheus.Gatherer
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}

	registerValidators()

	router := gin.New()
	router.Use(gin.Recovery(), requestID())

	server := &HTTPServerAdapter{
		router:        router,
		config:        opts.Config,
		forecasts:     opts.ForecastUseCase,
		loader:        opts.ForecastLoader,
		cities:        opts.CitySearcher,
		healthChecker: opts.HealthChecker,
		gatherer:      opts.Gatherer,
	}
	if server.gatherer == nil {
		server.gatherer = prometheus.DefaultGatherer
	}

	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.ForecastUseCase == nil {
		return errors.NewValidationError("forecast use case is required")
	}
	if opts.ForecastLoader == nil {
		return errors.NewValidationError("forecast loader is required")
	}
	if opts.CitySearcher == nil {
		return errors.NewValidationError("city searcher is required")
	}
	if opts.HealthChecker == nil {
		return errors.NewValidationError("health checker is required")
	}
	if opts.Config.CacheDir == "" {
		return errors.NewValidationError("cache dir is required")
	}
	return nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/forecast", s.getForecast)
		api.POST("/forecasts", s.loadForecasts)
		api.GET("/cities/search", s.searchCities)
		api.GET("/cache/keys", s.getCachedKeys)
		api.DELETE("/cache", s.resetCache)
		api.GET("/health", s.getHealth)
	}

	s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
}

// Start begins the HTTP server
func (s *HTTPServerAdapter) Start(ctx context.Context) error {
	slog.Info("Starting HTTP server", "port", s.config.Port)
	return s.router.Run(fmt.Sprintf(":%d", s.config.Port))
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}

// requestID tags each request with an id, reusing one sent by the client,
// and logs the finished request.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("requestID", id)
		c.Header(RequestIDHeader, id)

		start := time.Now()
		c.Next()

		slog.Debug("HTTP request served",
			"requestID", id,
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}
