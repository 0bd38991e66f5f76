package ports

import "time"

// ServerConfig represents server configuration
type ServerConfig struct {
	Port int
}

// OpenMeteoConfig represents upstream API configuration
type OpenMeteoConfig struct {
	ForecastURL  string
	GeocodingURL string
	Timeout      time.Duration
	SearchCount  int
	Language     string
}

// CacheConfig represents forecast cache configuration
type CacheConfig struct {
	Type       string
	Dir        string
	StaleAfter time.Duration
	Redis      RedisConfig
}

// RedisConfig represents Redis configuration
type RedisConfig struct {
	Addr         string
	Password     string
	DB           int
	DialTimeout  int
	ReadTimeout  int
	WriteTimeout int
	KeyPrefix    string
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetServerConfig() ServerConfig
	GetOpenMeteoConfig() OpenMeteoConfig
	GetCacheConfig() CacheConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}
