package external

import (
	"context"
	"time"

	"flosscast.app/internal/core/forecast"
	"flosscast.app/internal/ports"
)

// ForecastSourceLoggingDecorator decorates forecast sources with structured logging
type ForecastSourceLoggingDecorator struct {
	source forecast.ForecastSource
	name   string
	logger ports.Logger
}

// NewForecastSourceLoggingDecorator creates a new logging decorator for forecast sources
func NewForecastSourceLoggingDecorator(source forecast.ForecastSource, name string, logger ports.Logger) *ForecastSourceLoggingDecorator {
	return &ForecastSourceLoggingDecorator{
		source: source,
		name:   name,
		logger: logger,
	}
}

// FetchForecast wraps the source call with structured logging
func (d *ForecastSourceLoggingDecorator) FetchForecast(ctx context.Context, latitude, longitude float64) (*forecast.Forecast, error) {
	d.logger.Info("Forecast API request started",
		ports.F("provider", d.name),
		ports.F("latitude", latitude),
		ports.F("longitude", longitude),
		ports.F("event", "request"))

	startTime := time.Now()
	fc, err := d.source.FetchForecast(ctx, latitude, longitude)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Forecast API request failed",
			ports.F("provider", d.name),
			ports.F("latitude", latitude),
			ports.F("longitude", longitude),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return nil, err
	}

	d.logger.Info("Forecast API request completed",
		ports.F("provider", d.name),
		ports.F("latitude", latitude),
		ports.F("longitude", longitude),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("days", len(fc.Days)))

	return fc, nil
}

// CitySearcherLoggingDecorator decorates city searchers with structured logging
type CitySearcherLoggingDecorator struct {
	searcher forecast.CitySearcher
	name     string
	logger   ports.Logger
}

// NewCitySearcherLoggingDecorator creates a new logging decorator for city searchers
func NewCitySearcherLoggingDecorator(searcher forecast.CitySearcher, name string, logger ports.Logger) *CitySearcherLoggingDecorator {
	return &CitySearcherLoggingDecorator{
		searcher: searcher,
		name:     name,
		logger:   logger,
	}
}

// SearchCities wraps the search call with structured logging
func (d *CitySearcherLoggingDecorator) SearchCities(ctx context.Context, query string) ([]forecast.City, error) {
	d.logger.Info("Geocoding API request started",
		ports.F("provider", d.name),
		ports.F("query", query),
		ports.F("event", "request"))

	startTime := time.Now()
	cities, err := d.searcher.SearchCities(ctx, query)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Geocoding API request failed",
			ports.F("provider", d.name),
			ports.F("query", query),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return nil, err
	}

	d.logger.Info("Geocoding API request completed",
		ports.F("provider", d.name),
		ports.F("query", query),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("results", len(cities)))

	return cities, nil
}
