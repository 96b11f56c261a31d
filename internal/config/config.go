package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the codepost-sync tool
type Config struct {
	// API settings
	APIKey  string
	BaseURL string

	// HTTP settings
	HTTPTimeout time.Duration
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		APIKey:      os.Getenv("CODEPOST_API_KEY"),
		BaseURL:     getEnv("CODEPOST_API_URL", "https://api.codepost.io"),
		HTTPTimeout: time.Duration(getEnvInt("CODEPOST_HTTP_TIMEOUT_SECONDS", 30)) * time.Second,
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks that all required configuration is present
func (c *Config) validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("CODEPOST_API_KEY is required")
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("CODEPOST_HTTP_TIMEOUT_SECONDS must be greater than 0")
	}
	return nil
}

// getEnv gets environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets environment variable as int with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
