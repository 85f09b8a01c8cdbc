package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	CORS     CORSConfig
	Odin     OdinConfig
	Price    PriceConfig

	// APIKey seeds the developer API key on startup; FernetKey is the
	// base64 fernet key used to encrypt it at rest.
	APIKey    string
	FernetKey string
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// OdinConfig holds settings for the upstream trading platform API.
type OdinConfig struct {
	APIBaseURL  string
	PageBaseURL string
	PageSize    int
	ActivityCap int
}

// PriceConfig holds settings for the market price observer and the
// BTC/USD rate refresh.
type PriceConfig struct {
	PollInterval    time.Duration
	RateRefreshSpec string // cron expression
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/odin_insight.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
		Odin: OdinConfig{
			APIBaseURL:  getEnv("ODIN_API_BASE_URL", "https://api.odin.fun/v1"),
			PageBaseURL: getEnv("ODIN_PAGE_BASE_URL", "https://odin.fun"),
			PageSize:    getEnvInt("ODIN_PAGE_SIZE", 1000),
			ActivityCap: getEnvInt("ODIN_ACTIVITY_CAP", 5000),
		},
		Price: PriceConfig{
			PollInterval:    getEnvDuration("PRICE_POLL_INTERVAL", 5*time.Second),
			RateRefreshSpec: getEnv("RATE_REFRESH_CRON", "@every 10m"),
		},
		APIKey:    getEnv("API_KEY", ""),
		FernetKey: getEnv("FERNET_KEY", ""),
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt gets an integer environment variable or returns a default value.
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// getEnvDuration gets a duration environment variable or returns a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
