package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"flosscast.app/internal/adapters/external"
	"flosscast.app/internal/adapters/infrastructure"
	"flosscast.app/internal/adapters/storage"
	"flosscast.app/internal/config"
	"flosscast.app/internal/core/forecast"
	"flosscast.app/internal/ports"
	"flosscast.app/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type DependencyContainer struct {
	config   *config.Config
	registry *prometheus.Registry
	ports    *ports.ApplicationPorts

	forecastSource forecast.ForecastSource
	citySearcher   forecast.CitySearcher

	providerLog *infrastructure.FileLoggerAdapter
}

// DependencyOptions overrides process-wide defaults, mainly for tests
type DependencyOptions struct {
	// LogOutput defaults to os.Stdout
	LogOutput io.Writer
	// Registry defaults to a fresh registry with Go and process collectors
	Registry *prometheus.Registry
}

func NewDependencyContainer(cfg *config.Config, opts DependencyOptions) (*DependencyContainer, error) {
	container := &DependencyContainer{
		config:   cfg,
		registry: opts.Registry,
	}
	if container.registry == nil {
		container.registry = prometheus.NewRegistry()
		container.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	if opts.LogOutput == nil {
		opts.LogOutput = os.Stdout
	}

	if err := container.initializePorts(opts.LogOutput); err != nil {
		_ = container.Cleanup()
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	container.initializeProviders()
	return container, nil
}

func (c *DependencyContainer) initializePorts(logOutput io.Writer) error {
	log := logger.NewFromConfig(logOutput, c.config.Logging.Level, c.config.Logging.Format)
	log.SetDefault()
	slog.Info("Initializing ports...")

	appLogger := infrastructure.NewSlogLoggerAdapter(log.Logger)

	// Provider requests go to their own file when one is configured
	var providerLogger ports.Logger = appLogger
	if c.config.Logging.EnableProviderLogging && c.config.Logging.ProviderFile != "" {
		fileLogger, err := infrastructure.NewFileLoggerAdapter(c.config.Logging.ProviderFile)
		if err != nil {
			slog.Warn("Failed to create provider file logger, falling back to slog", "error", err)
		} else {
			c.providerLog = fileLogger
			providerLogger = fileLogger
			slog.Info("Provider file logging enabled", "path", fileLogger.Path())
		}
	}

	store, err := storage.NewDocumentStoreFactory(appLogger).CreateDocumentStore(&c.config.Cache)
	if err != nil {
		slog.Error("Failed to create document store", "error", err)
		return fmt.Errorf("create document store: %w", err)
	}

	slog.Info("Document store initialized",
		"type", c.config.Cache.Type.String(),
		"store", store.Name(),
		"dir", c.config.Cache.Dir)

	c.ports = &ports.ApplicationPorts{
		DocumentStore:   store,
		ForecastMetrics: infrastructure.NewPrometheusForecastMetrics(c.registry),
		UpstreamMetrics: infrastructure.NewPrometheusUpstreamMetrics(c.registry),
		ConfigProvider:  infrastructure.NewConfigProviderAdapter(c.config),
		Logger:          appLogger,
		ProviderLogger:  providerLogger,
	}

	slog.Info("Ports initialized successfully")
	return nil
}

// initializeProviders builds the Open-Meteo sources. The rate limiter is the
// outermost layer so waiting for a token is not logged as request time.
func (c *DependencyContainer) initializeProviders() {
	upstream := c.config.OpenMeteo

	var source forecast.ForecastSource = external.NewOpenMeteoForecastProvider(external.OpenMeteoForecastProviderParams{
		BaseURL:   upstream.ForecastURL,
		Timeout:   upstream.Timeout(),
		UserAgent: upstream.UserAgent,
		Logger:    c.ports.Logger,
	})
	var searcher forecast.CitySearcher = external.NewOpenMeteoGeocodingProvider(external.OpenMeteoGeocodingProviderParams{
		BaseURL:   upstream.GeocodingURL,
		Count:     upstream.SearchCount,
		Language:  upstream.Language,
		Timeout:   upstream.Timeout(),
		UserAgent: upstream.UserAgent,
		Logger:    c.ports.Logger,
	})

	if c.config.Logging.EnableProviderLogging {
		source = external.NewForecastSourceLoggingDecorator(source, "open-meteo", c.ports.ProviderLogger)
		searcher = external.NewCitySearcherLoggingDecorator(searcher, "open-meteo-geocoding", c.ports.ProviderLogger)
		slog.Info("Provider request logging enabled")
	}

	limiter := external.NewUpstreamLimiter(upstream.RateLimitRPS, upstream.RateLimitBurst, c.ports.UpstreamMetrics)
	c.forecastSource = external.NewRateLimitedForecastSource(source, limiter)
	c.citySearcher = external.NewRateLimitedCitySearcher(searcher, limiter)
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

func (c *DependencyContainer) ForecastSource() forecast.ForecastSource {
	return c.forecastSource
}

func (c *DependencyContainer) CitySearcher() forecast.CitySearcher {
	return c.citySearcher
}

// Registry returns the registry every application metric is registered with
func (c *DependencyContainer) Registry() *prometheus.Registry {
	return c.registry
}

// Cleanup releases the document store connection and the provider log file
func (c *DependencyContainer) Cleanup() error {
	var firstErr error
	if c.ports != nil {
		if closer, ok := c.ports.DocumentStore.(io.Closer); ok {
			if err := closer.Close(); err != nil {
				firstErr = fmt.Errorf("close document store: %w", err)
			}
		}
	}
	if c.providerLog != nil {
		if err := c.providerLog.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("close provider log: %w", err)
		}
	}
	return firstErr
}
