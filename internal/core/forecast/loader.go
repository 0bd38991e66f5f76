package forecast

import (
	"context"
	"fmt"
	"sync"
	"time"

	"flosscast.app/internal/ports"
	"flosscast.app/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const defaultLoaderConcurrency = 4

// ForecastGetter is the cache operation the loader degrades around.
type ForecastGetter interface {
	GetForecast(ctx context.Context, params GetForecastParams) (*Forecast, error)
}

// ForecastUpdate is a forecast for presentation. Stale is set when the
// refresh failed and cached (or empty) data is shown instead.
type ForecastUpdate struct {
	Forecast *Forecast
	Stale    bool
}

// ForecastsUpdate holds forecasts keyed by city name.
type ForecastsUpdate struct {
	Forecasts map[string]*Forecast
	Stale     bool
}

// Loader turns network failures during a refresh into stale cached data.
type Loader struct {
	forecasts   ForecastGetter
	logger      ports.Logger
	metrics     ports.ForecastMetrics
	now         func() time.Time
	concurrency int
}

type LoaderDependencies struct {
	Forecasts ForecastGetter
	Logger    ports.Logger
	Metrics   ports.ForecastMetrics
	Now       func() time.Time
	// Concurrency bounds parallel city loads. Defaults to 4.
	Concurrency int
}

func NewLoader(deps LoaderDependencies) (*Loader, error) {
	if deps.Forecasts == nil {
		return nil, errors.NewValidationError("forecast getter is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}

	l := &Loader{
		forecasts:   deps.Forecasts,
		logger:      deps.Logger,
		metrics:     deps.Metrics,
		now:         deps.Now,
		concurrency: deps.Concurrency,
	}
	if l.now == nil {
		l.now = time.Now
	}
	if l.concurrency <= 0 {
		l.concurrency = defaultLoaderConcurrency
	}
	return l, nil
}

// LoadForecastForCity returns the forecast of one city. When the network
// fails even the cache-only retry, an empty forecast flagged stale is
// returned instead of an error.
func (l *Loader) LoadForecastForCity(ctx context.Context, dir string, city City, force bool) (ForecastUpdate, error) {
	fc, stale, err := l.load(ctx, dir, city, force)
	if err == nil {
		return ForecastUpdate{Forecast: fc, Stale: stale}, nil
	}
	if !errors.IsNetworkError(err) {
		return ForecastUpdate{}, err
	}

	l.logger.Warn("No forecast available, showing empty forecast",
		ports.F("city", city.Name),
		ports.F("error", err))
	return ForecastUpdate{Forecast: EmptyForecast(l.now()), Stale: true}, nil
}

// LoadForecastsForCities loads every city concurrently. Cities without any
// forecast are left out and mark the result stale. Errors other than
// network failures abort the whole load.
func (l *Loader) LoadForecastsForCities(ctx context.Context, dir string, cities []City, force bool) (ForecastsUpdate, error) {
	result := ForecastsUpdate{Forecasts: make(map[string]*Forecast, len(cities))}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.concurrency)
	for _, city := range cities {
		city := city
		g.Go(func() error {
			fc, stale, err := l.load(gctx, dir, city, force)
			if err != nil && !errors.IsNetworkError(err) {
				return fmt.Errorf("load forecast for %s: %w", city.Name, err)
			}

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				l.logger.Warn("Skipping city without forecast",
					ports.F("city", city.Name),
					ports.F("error", err))
				result.Stale = true
				return nil
			}
			result.Forecasts[city.Name] = fc
			result.Stale = result.Stale || stale
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return ForecastsUpdate{}, err
	}
	return result, nil
}

// load asks the cache with the requested policy and, on a network failure,
// once more in cache-only mode.
func (l *Loader) load(ctx context.Context, dir string, city City, force bool) (*Forecast, bool, error) {
	params := GetForecastParams{
		Dir:         dir,
		Latitude:    city.Latitude,
		Longitude:   city.Longitude,
		ForceUpdate: force,
	}

	fc, err := l.forecasts.GetForecast(ctx, params)
	if err == nil {
		return fc, false, nil
	}
	if !errors.IsNetworkError(err) {
		return nil, false, err
	}

	l.logger.Warn("Forecast refresh failed, falling back to cache",
		ports.F("city", city.Name),
		ports.F("error", err))

	params.ForceUpdate = false
	params.CacheOnly = true
	fc, fallbackErr := l.forecasts.GetForecast(ctx, params)
	l.metrics.RecordFallback(fallbackErr == nil)
	if fallbackErr != nil {
		return nil, true, fallbackErr
	}
	return fc, true, nil
}
