package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Environment names accepted in APP_ENV.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config holds all configuration for the application.
type Config struct {
	Addr          string `validate:"required"`
	AppBaseURL    string `validate:"required,url"`
	Env           string `validate:"oneof=development production"`
	LogFormat     string `validate:"oneof=text json"`
	LogLevel      string `validate:"oneof=debug info warn error"`
	CatalogPath   string
	CatalogWatch  bool
	PlaygroundURL string `validate:"required,url"`
	APIRateLimit  int    `validate:"gte=1"`
}

// IsDevelopment reports whether development-only features (live reload,
// catalog watching) may be enabled.
func (c *Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

// New loads configuration from a .env file, if present, and the environment.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// slog is configured from this config, so the standard logger is used here.
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv()
}

// FromEnv builds and validates a Config from environment variables only.
func FromEnv() (*Config, error) {
	rateLimit, err := intEnv("API_RATE_LIMIT", 60)
	if err != nil {
		return nil, err
	}
	watch, err := boolEnv("CATALOG_WATCH", false)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Addr:          getEnv("APP_ADDR", ":8080"),
		AppBaseURL:    getEnv("APP_BASE_URL", "http://localhost:8080"),
		Env:           getEnv("APP_ENV", EnvDevelopment),
		LogFormat:     getEnv("LOG_FORMAT", "text"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		CatalogPath:   os.Getenv("CATALOG_PATH"),
		CatalogWatch:  watch,
		PlaygroundURL: getEnv("PLAYGROUND_URL", "https://nextjs.zbd.dev"),
		APIRateLimit:  rateLimit,
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.CatalogWatch && cfg.CatalogPath == "" {
		return nil, fmt.Errorf("invalid configuration: CATALOG_WATCH requires CATALOG_PATH")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

func boolEnv(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return b, nil
}
