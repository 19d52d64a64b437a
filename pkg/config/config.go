package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	Port        string
	GinMode     string
	LogLevel    string
	LogFormat   string
	DBDriver    string
	DatabaseURL string
	JWTSecret   string
	// JWTExpiry defaults to 3600000s, the lifetime tokens have always been issued with.
	JWTExpiry      time.Duration
	GitHubAPIURL   string
	GitHubClientID string
	GitHubSecret   string
	GitHubToken    string
	GitHubTimeout  time.Duration
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		Port:           getEnv("PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "release"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
		DBDriver:       getEnv("DB_DRIVER", DriverPostgres),
		DatabaseURL:    databaseURL(),
		JWTSecret:      getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		JWTExpiry:      getDuration("JWT_EXPIRY", 3600000*time.Second),
		GitHubAPIURL:   getEnv("GITHUB_API_URL", "https://api.github.com"),
		GitHubClientID: getEnv("GITHUB_CLIENT_ID", ""),
		GitHubSecret:   getEnv("GITHUB_SECRET", ""),
		GitHubToken:    getEnv("GITHUB_TOKEN", ""),
		GitHubTimeout:  getDuration("GITHUB_TIMEOUT", 10*time.Second),
	}
}

// databaseURL prefers DATABASE_URL and falls back to a DSN assembled from DB_* variables.
func databaseURL() string {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return dsn
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", "postgres"),
		getEnv("DB_NAME", "devconnector"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_SSLMODE", "disable"),
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return defaultValue
}
