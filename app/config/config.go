package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the rental frontend
type Config struct {
	// Server
	Port     string `env:"PORT" default:"9600"`
	Host     string `env:"HOST" default:"127.0.0.1"`
	LogLevel string `env:"LOG_LEVEL" default:"info"`

	// Database
	DatabaseURL      string `env:"DATABASE_URL"`
	DatabaseHost     string `env:"DB_HOST" default:"localhost"`
	DatabasePort     string `env:"DB_PORT" default:"5432"`
	DatabaseName     string `env:"DB_NAME" default:"rental_db"`
	DatabaseUser     string `env:"DB_USER" default:"rental_user"`
	DatabasePassword string `env:"DB_PASSWORD" required:"true"`
	DatabaseSSLMode  string `env:"DB_SSL_MODE" default:"disable"`

	// Kratos
	KratosPublicURL string        `env:"KRATOS_PUBLIC_URL" required:"true"`
	KratosTimeout   time.Duration `env:"KRATOS_TIMEOUT" default:"10s"`

	// Session
	SessionTokenPath      string        `env:"SESSION_TOKEN_PATH"`
	SessionPollInterval   time.Duration `env:"SESSION_POLL_INTERVAL" default:"30s"`
	SessionConflictPolicy string        `env:"SESSION_CONFLICT_POLICY" default:"prefer_manual"`
	SessionEventTimeout   time.Duration `env:"SESSION_EVENT_TIMEOUT" default:"10s"`

	// Search
	SearchVocabularyPath string `env:"SEARCH_VOCABULARY_PATH"`

	// Rate limiting
	RateLimitRPS     float64 `env:"RATE_LIMIT_RPS" default:"20"`
	AuthRateLimitRPM int     `env:"AUTH_RATE_LIMIT_RPM" default:"10"`

	// Browser origins allowed to call the local API
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" default:"http://localhost:5173,http://127.0.0.1:5173"`

	// Features
	EnableMetrics bool `env:"ENABLE_METRICS" default:"true"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	config := &Config{}

	// Server configuration
	config.Port = getEnvOrDefault("PORT", "9600")
	config.Host = getEnvOrDefault("HOST", "127.0.0.1")
	config.LogLevel = getEnvOrDefault("LOG_LEVEL", "info")

	// Database configuration
	config.DatabaseURL = os.Getenv("DATABASE_URL")
	config.DatabaseHost = getEnvOrDefault("DB_HOST", "localhost")
	config.DatabasePort = getEnvOrDefault("DB_PORT", "5432")
	config.DatabaseName = getEnvOrDefault("DB_NAME", "rental_db")
	config.DatabaseUser = getEnvOrDefault("DB_USER", "rental_user")
	config.DatabasePassword = os.Getenv("DB_PASSWORD")
	if config.DatabasePassword == "" && config.DatabaseURL == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}
	config.DatabaseSSLMode = getEnvOrDefault("DB_SSL_MODE", "disable")

	// Kratos configuration
	config.KratosPublicURL = os.Getenv("KRATOS_PUBLIC_URL")
	if config.KratosPublicURL == "" {
		return nil, fmt.Errorf("KRATOS_PUBLIC_URL is required")
	}

	var err error
	if config.KratosTimeout, err = getDurationEnv("KRATOS_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}

	// Session configuration
	config.SessionTokenPath = getEnvOrDefault("SESSION_TOKEN_PATH", defaultTokenPath())
	if config.SessionPollInterval, err = getDurationEnv("SESSION_POLL_INTERVAL", 30*time.Second); err != nil {
		return nil, err
	}
	config.SessionConflictPolicy = strings.ToLower(getEnvOrDefault("SESSION_CONFLICT_POLICY", "prefer_manual"))
	if config.SessionEventTimeout, err = getDurationEnv("SESSION_EVENT_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}

	config.SearchVocabularyPath = os.Getenv("SEARCH_VOCABULARY_PATH")

	// Rate limiting
	rpsStr := getEnvOrDefault("RATE_LIMIT_RPS", "20")
	config.RateLimitRPS, err = strconv.ParseFloat(rpsStr, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_RPS: %w", err)
	}
	rpmStr := getEnvOrDefault("AUTH_RATE_LIMIT_RPM", "10")
	rpm, err := strconv.ParseInt(rpmStr, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid AUTH_RATE_LIMIT_RPM: %w", err)
	}
	config.AuthRateLimitRPM = int(rpm)

	config.AllowedOrigins = splitList(getEnvOrDefault("ALLOWED_ORIGINS", "http://localhost:5173,http://127.0.0.1:5173"))

	// Feature flags
	config.EnableMetrics = getBoolEnv("ENABLE_METRICS", true)

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Validate port
	port, err := strconv.ParseInt(c.Port, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid port: %s", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535: %s", c.Port)
	}

	// Validate log level
	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	if !isValidURL(c.KratosPublicURL) {
		return fmt.Errorf("invalid Kratos public URL: %s", c.KratosPublicURL)
	}
	if c.DatabaseURL != "" && !isValidURL(c.DatabaseURL) {
		return fmt.Errorf("invalid database URL")
	}

	if c.SessionPollInterval < time.Second {
		return fmt.Errorf("session poll interval must be at least 1s, got: %v", c.SessionPollInterval)
	}
	if c.SessionEventTimeout <= 0 {
		return fmt.Errorf("session event timeout must be positive, got: %v", c.SessionEventTimeout)
	}

	validPolicies := []string{"prefer_manual", "last_writer"}
	if !contains(validPolicies, c.SessionConflictPolicy) {
		return fmt.Errorf("invalid session conflict policy: %s (must be one of: %s)", c.SessionConflictPolicy, strings.Join(validPolicies, ", "))
	}

	if c.SessionTokenPath == "" {
		return fmt.Errorf("session token path must not be empty")
	}

	if c.RateLimitRPS <= 0 {
		return fmt.Errorf("rate limit must be positive, got: %v", c.RateLimitRPS)
	}
	if c.AuthRateLimitRPM < 1 {
		return fmt.Errorf("auth rate limit must be at least 1 per minute, got: %d", c.AuthRateLimitRPM)
	}

	return nil
}

// Address returns the listen address for the HTTP server
func (c *Config) Address() string {
	return c.Host + ":" + c.Port
}

// DatabaseDSN returns DATABASE_URL when set, otherwise a URL assembled from the DB_* parts
func (c *Config) DatabaseDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DatabaseUser, c.DatabasePassword),
		Host:     c.DatabaseHost + ":" + c.DatabasePort,
		Path:     "/" + c.DatabaseName,
		RawQuery: "sslmode=" + url.QueryEscape(c.DatabaseSSLMode),
	}
	return u.String()
}

// Helper functions

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func defaultTokenPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".rental-frontend-session.json"
	}
	return filepath.Join(dir, "rental-frontend", "session.json")
}

func isValidURL(urlStr string) bool {
	if urlStr == "" {
		return false
	}

	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return false
	}

	return parsedURL.Scheme != "" && parsedURL.Host != ""
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

// splitList splits a comma separated value, dropping blanks
func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
