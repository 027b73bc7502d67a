// Package newsapi provides a client for the NewsAPI keyword-search endpoint.
package newsapi

import (
	"os"
	"time"
)

// Config holds configuration for the NewsAPI client.
type Config struct {
	APIKey  string        // API key for authentication
	BaseURL string        // Base URL for the /v2/everything endpoint
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads NewsAPI configuration from environment variables.
func LoadConfig() Config {
	base := os.Getenv("NEWSAPI_BASE_URL")
	if base == "" {
		base = "https://newsapi.org/v2/everything"
	}
	return Config{
		APIKey:  os.Getenv("NEWSAPI_KEY"),
		BaseURL: base,
		Timeout: 10 * time.Second,
	}
}
