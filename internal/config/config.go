package config

import (
	"fmt"
	"strings"
	"time"

	"flosscast.app/pkg/errors"
	"github.com/kelseyhightower/envconfig"
)

const (
	maxRedisDB           = 15
	maxStaleAfterMinutes = 1440
	maxPortNumber        = 65535
	maxSearchCount       = 100
	maxTimeoutSeconds    = 120
)

// Config represents the application configuration structure
type Config struct {
	Server    ServerConfig    `split_words:"true"`
	OpenMeteo OpenMeteoConfig `split_words:"true"`
	Cache     CacheConfig     `split_words:"true"`
	Logging   LoggingConfig   `split_words:"true"`
}

type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8080"`
}

type OpenMeteoConfig struct {
	ForecastURL    string  `envconfig:"OPEN_METEO_FORECAST_URL" default:"https://api.open-meteo.com/v1/forecast"`
	GeocodingURL   string  `envconfig:"OPEN_METEO_GEOCODING_URL" default:"https://geocoding-api.open-meteo.com/v1/search"`
	TimeoutSeconds int     `envconfig:"OPEN_METEO_TIMEOUT_SECONDS" default:"10"`
	RateLimitRPS   float64 `envconfig:"OPEN_METEO_RATE_LIMIT_RPS" default:"5"`
	RateLimitBurst int     `envconfig:"OPEN_METEO_RATE_LIMIT_BURST" default:"10"`
	SearchCount    int     `envconfig:"OPEN_METEO_SEARCH_COUNT" default:"10"`
	Language       string  `envconfig:"OPEN_METEO_LANGUAGE" default:"en"`
	UserAgent      string  `envconfig:"OPEN_METEO_USER_AGENT" default:"flosscast/1.0"`
}

// Timeout returns the per-request timeout
func (o OpenMeteoConfig) Timeout() time.Duration {
	return time.Duration(o.TimeoutSeconds) * time.Second
}

// CacheType represents the backend holding the forecast cache document
type CacheType int

const (
	CacheTypeUnknown CacheType = iota
	CacheTypeFile
	CacheTypeMemory
	CacheTypeRedis
)

// String returns the string representation of cache type
func (c CacheType) String() string {
	switch c {
	case CacheTypeFile:
		return "file"
	case CacheTypeMemory:
		return "memory"
	case CacheTypeRedis:
		return "redis"
	default:
		return "unknown"
	}
}

// IsValid checks if the cache type is valid
func (c CacheType) IsValid() bool {
	return c == CacheTypeFile || c == CacheTypeMemory || c == CacheTypeRedis
}

// CacheTypeFromString converts string to CacheType enum
func CacheTypeFromString(s string) CacheType {
	switch s {
	case "file":
		return CacheTypeFile
	case "memory":
		return CacheTypeMemory
	case "redis":
		return CacheTypeRedis
	default:
		return CacheTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (c *CacheType) UnmarshalText(text []byte) error {
	*c = CacheTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (c CacheType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

type CacheConfig struct {
	Type              CacheType   `envconfig:"CACHE_TYPE" default:"file"`
	Dir               string      `envconfig:"CACHE_DIR" default:"data"`
	StaleAfterMinutes int         `envconfig:"CACHE_STALE_AFTER_MINUTES" default:"60"`
	Redis             RedisConfig `split_words:"true"`
}

// StaleAfter returns the age after which cached forecasts are refreshed
func (c CacheConfig) StaleAfter() time.Duration {
	return time.Duration(c.StaleAfterMinutes) * time.Minute
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
	KeyPrefix    string `envconfig:"REDIS_KEY_PREFIX" default:"flosscast:cache:"`
}

type LoggingConfig struct {
	Level                 string `envconfig:"LOG_LEVEL" default:"info"`
	Format                string `envconfig:"LOG_FORMAT" default:"json"`
	EnableProviderLogging bool   `envconfig:"LOG_PROVIDER_REQUESTS" default:"true"`
	ProviderFile          string `envconfig:"LOG_PROVIDER_FILE" default:""`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.OpenMeteo.Validate(); err != nil {
		return err
	}
	if err := c.Cache.Validate(); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

func validateURL(name, value string) error {
	if value == "" {
		return errors.NewConfigurationError(name+" cannot be empty", nil)
	}
	if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
		return errors.NewConfigurationError(name+" must start with http:// or https://", nil)
	}
	return nil
}

func (o *OpenMeteoConfig) Validate() error {
	if err := validateURL("OPEN_METEO_FORECAST_URL", o.ForecastURL); err != nil {
		return err
	}
	if err := validateURL("OPEN_METEO_GEOCODING_URL", o.GeocodingURL); err != nil {
		return err
	}
	if o.TimeoutSeconds < 1 || o.TimeoutSeconds > maxTimeoutSeconds {
		return errors.NewConfigurationError(
			fmt.Sprintf("OPEN_METEO_TIMEOUT_SECONDS must be between 1 and %d", maxTimeoutSeconds), nil)
	}
	if o.RateLimitRPS <= 0 {
		return errors.NewConfigurationError("OPEN_METEO_RATE_LIMIT_RPS must be positive", nil)
	}
	if o.RateLimitBurst < 1 {
		return errors.NewConfigurationError("OPEN_METEO_RATE_LIMIT_BURST must be at least 1", nil)
	}
	if o.SearchCount < 1 || o.SearchCount > maxSearchCount {
		return errors.NewConfigurationError(
			fmt.Sprintf("OPEN_METEO_SEARCH_COUNT must be between 1 and %d", maxSearchCount), nil)
	}
	if o.Language == "" {
		return errors.NewConfigurationError("OPEN_METEO_LANGUAGE cannot be empty", nil)
	}
	return nil
}

func (c *CacheConfig) Validate() error {
	if !c.Type.IsValid() {
		return errors.NewConfigurationError("CACHE_TYPE must be one of: file, memory, redis", nil)
	}
	if c.Dir == "" {
		return errors.NewConfigurationError("CACHE_DIR cannot be empty", nil)
	}
	if c.StaleAfterMinutes < 1 || c.StaleAfterMinutes > maxStaleAfterMinutes {
		return errors.NewConfigurationError("CACHE_STALE_AFTER_MINUTES must be between 1 and 1440 minutes", nil)
	}

	if c.Type == CacheTypeRedis {
		return c.Redis.Validate()
	}

	return nil
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using Redis cache", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}

func (l *LoggingConfig) Validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return errors.NewConfigurationError("LOG_LEVEL must be one of: debug, info, warn, error", nil)
	}
	switch strings.ToLower(l.Format) {
	case "json", "text":
	default:
		return errors.NewConfigurationError("LOG_FORMAT must be one of: json, text", nil)
	}
	return nil
}
