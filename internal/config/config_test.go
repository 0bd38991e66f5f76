package config

import (
	"testing"
	"time"

	"flosscast.app/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		Server: ServerConfig{Port: 8080},
		OpenMeteo: OpenMeteoConfig{
			ForecastURL:    "https://api.open-meteo.com/v1/forecast",
			GeocodingURL:   "https://geocoding-api.open-meteo.com/v1/search",
			TimeoutSeconds: 10,
			RateLimitRPS:   5,
			RateLimitBurst: 10,
			SearchCount:    10,
			Language:       "en",
		},
		Cache: CacheConfig{
			Type:              CacheTypeFile,
			Dir:               "data",
			StaleAfterMinutes: 60,
		},
		Logging: LoggingConfig{Level: "info", Format: "json"},
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "https://api.open-meteo.com/v1/forecast", cfg.OpenMeteo.ForecastURL)
	assert.Equal(t, 10*time.Second, cfg.OpenMeteo.Timeout())
	assert.Equal(t, 10, cfg.OpenMeteo.SearchCount)
	assert.Equal(t, CacheTypeFile, cfg.Cache.Type)
	assert.Equal(t, time.Hour, cfg.Cache.StaleAfter())
	assert.Equal(t, "flosscast:cache:", cfg.Cache.Redis.KeyPrefix)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("CACHE_TYPE", "redis")
	t.Setenv("CACHE_DIR", "/var/lib/flosscast")
	t.Setenv("CACHE_STALE_AFTER_MINUTES", "30")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("OPEN_METEO_TIMEOUT_SECONDS", "3")
	t.Setenv("LOG_FORMAT", "text")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, CacheTypeRedis, cfg.Cache.Type)
	assert.Equal(t, "/var/lib/flosscast", cfg.Cache.Dir)
	assert.Equal(t, 30*time.Minute, cfg.Cache.StaleAfter())
	assert.Equal(t, "redis:6379", cfg.Cache.Redis.Addr)
	assert.Equal(t, 3*time.Second, cfg.OpenMeteo.Timeout())
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoadConfig_InvalidValue(t *testing.T) {
	t.Setenv("CACHE_TYPE", "sqlite")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.True(t, errors.IsConfigurationError(err))
	assert.Contains(t, err.Error(), "CACHE_TYPE")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantMsg string
	}{
		{
			name:   "Valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "PortOutOfRange",
			mutate:  func(c *Config) { c.Server.Port = 70000 },
			wantMsg: "SERVER_PORT",
		},
		{
			name:    "ForecastURLWithoutScheme",
			mutate:  func(c *Config) { c.OpenMeteo.ForecastURL = "api.open-meteo.com" },
			wantMsg: "OPEN_METEO_FORECAST_URL",
		},
		{
			name:    "ZeroTimeout",
			mutate:  func(c *Config) { c.OpenMeteo.TimeoutSeconds = 0 },
			wantMsg: "OPEN_METEO_TIMEOUT_SECONDS",
		},
		{
			name:    "NegativeRateLimit",
			mutate:  func(c *Config) { c.OpenMeteo.RateLimitRPS = -1 },
			wantMsg: "OPEN_METEO_RATE_LIMIT_RPS",
		},
		{
			name:    "EmptyCacheDir",
			mutate:  func(c *Config) { c.Cache.Dir = "" },
			wantMsg: "CACHE_DIR",
		},
		{
			name:    "StaleAfterTooLong",
			mutate:  func(c *Config) { c.Cache.StaleAfterMinutes = 2000 },
			wantMsg: "CACHE_STALE_AFTER_MINUTES",
		},
		{
			name: "RedisWithoutAddress",
			mutate: func(c *Config) {
				c.Cache.Type = CacheTypeRedis
				c.Cache.Redis = RedisConfig{DialTimeout: 1, ReadTimeout: 1, WriteTimeout: 1}
			},
			wantMsg: "REDIS_ADDR",
		},
		{
			name:    "UnknownLogLevel",
			mutate:  func(c *Config) { c.Logging.Level = "trace" },
			wantMsg: "LOG_LEVEL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsConfigurationError(err))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestCacheTypeFromString(t *testing.T) {
	assert.Equal(t, CacheTypeFile, CacheTypeFromString("file"))
	assert.Equal(t, CacheTypeMemory, CacheTypeFromString("memory"))
	assert.Equal(t, CacheTypeRedis, CacheTypeFromString("redis"))
	assert.Equal(t, CacheTypeUnknown, CacheTypeFromString("disk"))
	assert.Equal(t, "unknown", CacheTypeUnknown.String())
}
