// Package alphavantage provides a client for the Alpha Vantage company
// overview (fundamentals) API.
package alphavantage

import (
	"os"
	"time"
)

// Config holds configuration for the Alpha Vantage client.
type Config struct {
	APIKey  string        // API key for authentication
	BaseURL string        // Base URL for the query endpoint
	Timeout time.Duration // HTTP request timeout
}

// CacheTTL is how long a fundamentals record stays cached. Fundamental data
// changes quarterly, so 24 hours is generous and keeps the free-tier rate
// limit out of the request path.
const CacheTTL = 86400 * time.Second

// LoadConfig loads Alpha Vantage configuration from environment variables.
func LoadConfig() Config {
	base := os.Getenv("ALPHA_VANTAGE_BASE_URL")
	if base == "" {
		base = "https://www.alphavantage.co/query"
	}
	return Config{
		APIKey:  os.Getenv("ALPHA_VANTAGE_KEY"),
		BaseURL: base,
		Timeout: 10 * time.Second,
	}
}
