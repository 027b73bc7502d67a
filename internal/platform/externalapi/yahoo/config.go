// Package yahoo provides a client for the Yahoo Finance chart API.
package yahoo

import (
	"os"
	"time"
)

// Config holds configuration for the Yahoo Finance chart API client.
type Config struct {
	BaseURL string        // Base URL for the chart endpoint
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads Yahoo configuration from environment variables. The API is
// unauthenticated; only the base URL is overridable.
func LoadConfig() Config {
	base := os.Getenv("YAHOO_BASE_URL")
	if base == "" {
		base = "https://query1.finance.yahoo.com/v8/finance/chart"
	}
	return Config{
		BaseURL: base,
		Timeout: 10 * time.Second,
	}
}
