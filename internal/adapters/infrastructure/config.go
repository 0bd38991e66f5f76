package infrastructure

import (
	"flosscast.app/internal/config"
	"flosscast.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

// NewConfigProviderAdapter creates a new config provider adapter
func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

// GetServerConfig returns server configuration
func (c *ConfigProviderAdapter) GetServerConfig() ports.ServerConfig {
	return ports.ServerConfig{
		Port: c.config.Server.Port,
	}
}

// GetOpenMeteoConfig returns upstream API configuration
func (c *ConfigProviderAdapter) GetOpenMeteoConfig() ports.OpenMeteoConfig {
	return ports.OpenMeteoConfig{
		ForecastURL:  c.config.OpenMeteo.ForecastURL,
		GeocodingURL: c.config.OpenMeteo.GeocodingURL,
		Timeout:      c.config.OpenMeteo.Timeout(),
		SearchCount:  c.config.OpenMeteo.SearchCount,
		Language:     c.config.OpenMeteo.Language,
	}
}

// GetCacheConfig returns cache configuration
func (c *ConfigProviderAdapter) GetCacheConfig() ports.CacheConfig {
	return ports.CacheConfig{
		Type:       c.config.Cache.Type.String(),
		Dir:        c.config.Cache.Dir,
		StaleAfter: c.config.Cache.StaleAfter(),
		Redis: ports.RedisConfig{
			Addr:         c.config.Cache.Redis.Addr,
			Password:     c.config.Cache.Redis.Password,
			DB:           c.config.Cache.Redis.DB,
			DialTimeout:  c.config.Cache.Redis.DialTimeout,
			ReadTimeout:  c.config.Cache.Redis.ReadTimeout,
			WriteTimeout: c.config.Cache.Redis.WriteTimeout,
			KeyPrefix:    c.config.Cache.Redis.KeyPrefix,
		},
	}
}
