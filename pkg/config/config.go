// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, storage, site and notifier settings

package config

import (
	"errors"
	"net/url"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Storage contains persistent store configuration
	Storage StorageConfig

	// Site contains the tracked site configuration
	Site SiteConfig

	// Check contains check cycle configuration
	Check CheckConfig

	// Notify contains notifier configuration
	Notify NotifyConfig

	// LogLevel controls the logger verbosity
	LogLevel string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RateLimit is the per-IP request limit per window; 0 disables limiting
	RateLimit int

	// RateWindowSeconds is the rate limit window length
	RateWindowSeconds int
}

// StorageConfig holds persistent store configuration
type StorageConfig struct {
	// Type specifies the storage backend (sqlite/memory/redis)
	Type string

	// SQLitePath is the database file path for the sqlite backend
	SQLitePath string

	// Redis contains Redis-specific configuration
	Redis RedisConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// SiteConfig holds the tracked site configuration
type SiteConfig struct {
	// ID is the site identifier used in composite item IDs
	ID string

	// BaseURL is the site origin
	BaseURL string

	// Name is the suffix the site appends to page titles
	Name string
}

// CheckConfig holds check cycle configuration
type CheckConfig struct {
	// PacingSeconds is the fixed delay between item checks in one cycle
	PacingSeconds int

	// FetchTimeoutSeconds bounds each outbound document fetch
	FetchTimeoutSeconds int
}

// NotifyConfig holds notifier configuration
type NotifyConfig struct {
	// NtfyTopic is the ntfy topic URL; empty disables pushes
	NtfyTopic string

	// TimeoutSeconds bounds each push request
	TimeoutSeconds int
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:              getEnvOrDefault("PORT", "8000"),
			RateLimit:         getEnvAsIntOrDefault("RATE_LIMIT", 100),
			RateWindowSeconds: getEnvAsIntOrDefault("RATE_WINDOW_SECONDS", 60),
		},
		Storage: StorageConfig{
			Type:       getEnvOrDefault("STORAGE_TYPE", "sqlite"),
			SQLitePath: getEnvOrDefault("SQLITE_PATH", "mangawatch.db"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
		},
		Site: SiteConfig{
			ID:      getEnvOrDefault("SITE_ID", "madara"),
			BaseURL: getEnvOrDefault("SITE_BASE_URL", "https://manhuaus.com"),
			Name:    getEnvOrDefault("SITE_NAME", "Manhuaus"),
		},
		Check: CheckConfig{
			PacingSeconds:       getEnvAsIntOrDefault("CHECK_PACING_SECONDS", 2),
			FetchTimeoutSeconds: getEnvAsIntOrDefault("FETCH_TIMEOUT_SECONDS", 30),
		},
		Notify: NotifyConfig{
			NtfyTopic:      getEnvOrDefault("NTFY_TOPIC", ""),
			TimeoutSeconds: getEnvAsIntOrDefault("NTFY_TIMEOUT_SECONDS", 10),
		},
		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
	}

	return cfg, nil
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("server port cannot be empty")
	}

	switch c.Storage.Type {
	case "sqlite", "memory", "redis":
	default:
		return errors.New("storage type must be sqlite, memory or redis")
	}

	if c.Check.PacingSeconds < 0 {
		return errors.New("check pacing cannot be negative")
	}

	parsed, err := url.Parse(c.Site.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return errors.New("site base URL must be an absolute URL")
	}

	return nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
