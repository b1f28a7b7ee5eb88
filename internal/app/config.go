package app

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AccessSecret  string        // Required: HS256 secret for access tokens
	RefreshSecret string        // Required: HS256 secret for refresh tokens, must differ from AccessSecret
	AccessTTL     time.Duration // Access token lifetime (default: 30m)
	RefreshTTL    time.Duration // Refresh token lifetime (default: 24h)
	Issuer        string        // Issuer claim for tokens (default: todovault)

	BootstrapUsername string // Optional: user seeded when the users table is empty
	BootstrapPassword string // Optional: password for the bootstrap user

	DatabaseFile        string        // Path to the SQLite database file (default: ./todovault.db)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

// LoadConfig reads configuration from the environment, with a .env file as a
// convenience for local development.
func LoadConfig() Config {
	_ = godotenv.Load() // missing .env is fine

	return Config{
		AccessSecret:  os.Getenv("JWT_SECRET"),
		RefreshSecret: os.Getenv("JWT_REFRESH_SECRET"),
		AccessTTL:     getEnvSecondsOrDefault("JWT_EXPIRATION_TIME", 30*time.Minute),
		RefreshTTL:    getEnvSecondsOrDefault("JWT_REFRESH_EXPIRATION_TIME", 24*time.Hour),
		Issuer:        getEnvOrDefault("JWT_ISSUER", "todovault"),

		BootstrapUsername: os.Getenv("BOOTSTRAP_USERNAME"),
		BootstrapPassword: os.Getenv("BOOTSTRAP_PASSWORD"),

		DatabaseFile:        getEnvOrDefault("DATABASE_FILE", "todovault.db"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

// Validate rejects configurations that would issue unverifiable or
// interchangeable tokens.
func (c Config) Validate() error {
	if c.AccessSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.RefreshSecret == "" {
		return errors.New("JWT_REFRESH_SECRET is required")
	}
	if c.AccessSecret == c.RefreshSecret {
		return errors.New("JWT_SECRET and JWT_REFRESH_SECRET must differ")
	}
	if c.AccessTTL <= 0 || c.RefreshTTL <= 0 {
		return errors.New("token lifetimes must be positive")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

// getEnvSecondsOrDefault parses an integer number of seconds. Token expiries
// are configured in seconds because the cookie Max-Age must match exactly.
func getEnvSecondsOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if seconds, err := strconv.Atoi(value); err == nil && seconds > 0 {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
