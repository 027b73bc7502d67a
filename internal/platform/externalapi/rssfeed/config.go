// Package rssfeed provides the feed-pull news source backed by public RSS
// feeds.
package rssfeed

import (
	"os"
	"strings"
	"time"
)

// defaultFeeds is the fixed feed set used when no override is configured.
var defaultFeeds = []string{
	"https://feeds.finance.yahoo.com/rss/2.0/headline",
	"https://feeds.reuters.com/reuters/businessNews",
	"https://feeds.marketwatch.com/marketwatch/topstories",
	"https://www.investing.com/rss/news.rss",
}

// Config holds configuration for the RSS source.
type Config struct {
	FeedURLs []string      // Feed endpoints to pull, in priority order
	Timeout  time.Duration // HTTP request timeout per feed
}

// LoadConfig loads RSS configuration from environment variables.
// RSS_FEED_URLS is a comma-separated list; empty means the default set.
func LoadConfig() Config {
	feeds := defaultFeeds
	if raw := os.Getenv("RSS_FEED_URLS"); raw != "" {
		feeds = nil
		for _, u := range strings.Split(raw, ",") {
			if u = strings.TrimSpace(u); u != "" {
				feeds = append(feeds, u)
			}
		}
	}
	return Config{
		FeedURLs: feeds,
		Timeout:  10 * time.Second,
	}
}
