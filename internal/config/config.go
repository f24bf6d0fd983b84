package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const PROD_STRING = "prod"

// Config holds all application configuration loaded from environment.
type Config struct {
	IsProduction       bool
	ProdOrigins        []string
	HTTPAddr           string
	BaseURL            string
	GoogleClientID     string
	GoogleClientSecret string
	FetchConcurrency   int
}

// Load loads configuration from .env (optional) and environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		log.Printf("failed to load .env file: %v", err)
	}

	cfg := &Config{}

	// Application environment (default: dev)
	appEnvStr := getEnv("APP_ENV", "dev")
	cfg.IsProduction = appEnvStr == PROD_STRING

	// Production origins, comma-separated (default: empty)
	if origins := getEnv("PROD_ORIGINS", ""); origins != "" {
		cfg.ProdOrigins = strings.Split(origins, ",")
	}

	// HTTP listen address (default: :8080)
	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8080")

	// Public base URL, used to build the OAuth callback (default: localhost)
	cfg.BaseURL = getEnv("BASE_URL", "http://localhost:8080")

	// Google OAuth credentials are required
	cfg.GoogleClientID = os.Getenv("GOOGLE_CLIENT_ID")
	if cfg.GoogleClientID == "" {
		return nil, fmt.Errorf("GOOGLE_CLIENT_ID is required")
	}
	cfg.GoogleClientSecret = os.Getenv("GOOGLE_CLIENT_SECRET")
	if cfg.GoogleClientSecret == "" {
		return nil, fmt.Errorf("GOOGLE_CLIENT_SECRET is required")
	}

	// Bound on concurrent per-day calendar fetches (default: 4)
	cfg.FetchConcurrency, err = getEnvAsInt("FETCH_CONCURRENCY", 4)
	if err != nil {
		return nil, fmt.Errorf("invalid FETCH_CONCURRENCY: %w", err)
	}

	return cfg, nil
}

// OAuthCallbackURL returns the absolute redirect URL registered with the
// provider.
func (c *Config) OAuthCallbackURL() string {
	return strings.TrimRight(c.BaseURL, "/") + "/v1/auth/google/callback"
}

// getEnv returns the value of the environment variable if set,
// otherwise returns the provided default value.
func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer.
// It returns the default value if the variable is not set.
// It returns an error if the variable is set but is not a valid integer.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valStr := getEnv(key, "")
	if valStr == "" {
		return defaultValue, nil
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		// Return 0 and a wrapped error to provide context
		return 0, fmt.Errorf("env %s value %q is not a valid integer: %w", key, valStr, err)
	}

	return val, nil
}
