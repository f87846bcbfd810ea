package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Backend names for STORE_BACKEND
const (
	BackendSurrealDB = "surrealdb"
	BackendMemory    = "memory"
)

type Config struct {
	StoreBackend string

	SurrealURL       string
	SurrealNamespace string
	SurrealDatabase  string
	SurrealUser      string
	SurrealPass      string
	ConnectTimeout   time.Duration

	Environment string
	LogLevel    string
	LogFormat   string
}

var (
	ErrMissingSurrealURL = errors.New("SURREALDB_URL is required")
	ErrInvalidBackend    = errors.New("STORE_BACKEND must be surrealdb or memory")
)

func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		StoreBackend:     getEnvOrDefault("STORE_BACKEND", BackendSurrealDB),
		SurrealURL:       os.Getenv("SURREALDB_URL"),
		SurrealNamespace: getEnvOrDefault("SURREALDB_NAMESPACE", "storepulse"),
		SurrealDatabase:  getEnvOrDefault("SURREALDB_DATABASE", "storepulse"),
		SurrealUser:      os.Getenv("SURREALDB_USER"),
		SurrealPass:      os.Getenv("SURREALDB_PASS"),
		ConnectTimeout:   getEnvOrDefaultDuration("STORE_CONNECT_TIMEOUT", 10*time.Second),
		Environment:      getEnvOrDefault("ENV", "development"),
		LogLevel:         getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:        getEnvOrDefault("LOG_FORMAT", "json"),
	}

	if cfg.StoreBackend != BackendSurrealDB && cfg.StoreBackend != BackendMemory {
		return nil, ErrInvalidBackend
	}
	if cfg.StoreBackend == BackendSurrealDB && cfg.SurrealURL == "" {
		return nil, ErrMissingSurrealURL
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvOrDefaultDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	return defaultValue
}
