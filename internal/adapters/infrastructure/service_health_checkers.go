package infrastructure

import (
	"context"
	"time"

	"flosscast.app/internal/ports"
)

const healthCheckTimeout = 3 * time.Second

// DocumentStoreHealthChecker reports whether the cache document store is reachable
type DocumentStoreHealthChecker struct {
	store ports.DocumentStore
}

// NewDocumentStoreHealthChecker creates a new document store health checker
func NewDocumentStoreHealthChecker(store ports.DocumentStore) *DocumentStoreHealthChecker {
	return &DocumentStoreHealthChecker{store: store}
}

// Check pings the store
func (d *DocumentStoreHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "cache",
		Status:    ports.StatusHealthy,
		Details:   map[string]interface{}{},
	}

	if d.store == nil {
		status.Status = ports.StatusUnhealthy
		status.Error = "document store is not configured"
		return status
	}
	status.Details["store"] = d.store.Name()

	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	if err := d.store.Ping(ctx); err != nil {
		status.Status = ports.StatusUnhealthy
		status.Error = err.Error()
	}
	return status
}

// UpstreamHealthChecker reports the configured Open-Meteo endpoints. It does
// not call them, so health checks never consume rate limit tokens.
type UpstreamHealthChecker struct {
	config ports.OpenMeteoConfig
}

// NewUpstreamHealthChecker creates a new upstream health checker
func NewUpstreamHealthChecker(config ports.OpenMeteoConfig) *UpstreamHealthChecker {
	return &UpstreamHealthChecker{config: config}
}

// Check verifies the upstream configuration
func (u *UpstreamHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "openMeteo",
		Status:    ports.StatusHealthy,
		Details: map[string]interface{}{
			"forecastURL":  u.config.ForecastURL,
			"geocodingURL": u.config.GeocodingURL,
			"timeout":      u.config.Timeout.String(),
		},
	}

	if u.config.ForecastURL == "" || u.config.GeocodingURL == "" {
		status.Status = ports.StatusUnhealthy
		status.Error = "open-meteo endpoints are not configured"
	}
	return status
}
