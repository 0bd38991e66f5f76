package external

import (
	"context"
	"time"

	"flosscast.app/internal/core/forecast"
	"flosscast.app/internal/ports"
	"flosscast.app/pkg/errors"
	"golang.org/x/time/rate"
)

const (
	EndpointForecast  = "forecast"
	EndpointGeocoding = "geocoding"
)

// UpstreamLimiter throttles calls to the upstream API and reports each call
// to the upstream metrics. One limiter is shared by all endpoints of a host.
type UpstreamLimiter struct {
	limiter *rate.Limiter
	metrics ports.UpstreamMetrics
}

// NewUpstreamLimiter allows rps requests per second with bursts of burst.
func NewUpstreamLimiter(rps float64, burst int, metrics ports.UpstreamMetrics) *UpstreamLimiter {
	if burst < 1 {
		burst = 1
	}
	return &UpstreamLimiter{
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		metrics: metrics,
	}
}

// do waits for a token and runs call, recording the outcome.
func (l *UpstreamLimiter) do(ctx context.Context, endpoint string, call func() error) error {
	waitStart := time.Now()
	if err := l.limiter.Wait(ctx); err != nil {
		l.metrics.RecordRequest(endpoint, false, time.Since(waitStart))
		return errors.NewNetworkError("rate limit wait aborted", err)
	}
	l.metrics.RecordRateLimitWait(endpoint, time.Since(waitStart))

	start := time.Now()
	err := call()
	l.metrics.RecordRequest(endpoint, err == nil, time.Since(start))
	return err
}

// RateLimitedForecastSource applies an UpstreamLimiter to a forecast source
type RateLimitedForecastSource struct {
	source  forecast.ForecastSource
	limiter *UpstreamLimiter
}

func NewRateLimitedForecastSource(source forecast.ForecastSource, limiter *UpstreamLimiter) *RateLimitedForecastSource {
	return &RateLimitedForecastSource{source: source, limiter: limiter}
}

func (r *RateLimitedForecastSource) FetchForecast(ctx context.Context, latitude, longitude float64) (*forecast.Forecast, error) {
	var fc *forecast.Forecast
	err := r.limiter.do(ctx, EndpointForecast, func() error {
		var err error
		fc, err = r.source.FetchForecast(ctx, latitude, longitude)
		return err
	})
	if err != nil {
		return nil, err
	}
	return fc, nil
}

// RateLimitedCitySearcher applies an UpstreamLimiter to a city searcher
type RateLimitedCitySearcher struct {
	searcher forecast.CitySearcher
	limiter  *UpstreamLimiter
}

func NewRateLimitedCitySearcher(searcher forecast.CitySearcher, limiter *UpstreamLimiter) *RateLimitedCitySearcher {
	return &RateLimitedCitySearcher{searcher: searcher, limiter: limiter}
}

func (r *RateLimitedCitySearcher) SearchCities(ctx context.Context, query string) ([]forecast.City, error) {
	var cities []forecast.City
	err := r.limiter.do(ctx, EndpointGeocoding, func() error {
		var err error
		cities, err = r.searcher.SearchCities(ctx, query)
		return err
	})
	if err != nil {
		return nil, err
	}
	return cities, nil
}
