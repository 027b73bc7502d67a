// Package di provides dependency injection factories for creating application components.
package di

import (
	"os"

	researchentity "market_dashboard/internal/feature/research/domain/entity"
	statususecase "market_dashboard/internal/feature/status/usecase"
	"market_dashboard/internal/platform/cache"
	"market_dashboard/internal/platform/externalapi/alphavantage"
	"market_dashboard/internal/platform/externalapi/finnhub"
	"market_dashboard/internal/platform/externalapi/newsapi"
	"market_dashboard/internal/platform/externalapi/rssfeed"
	"market_dashboard/internal/platform/externalapi/yahoo"
	infrahttp "market_dashboard/internal/platform/http"
)

// NewMarket creates a fully configured chart-provider client.
func NewMarket() *yahoo.YahooMarket {
	cfg := yahoo.LoadConfig()
	return yahoo.NewYahooMarket(cfg, infrahttp.NewHTTPClient(cfg.Timeout))
}

// NewFeedSource creates the feed-pull news source.
func NewFeedSource() *rssfeed.FeedSource {
	cfg := rssfeed.LoadConfig()
	return rssfeed.NewFeedSource(cfg, infrahttp.NewHTTPClient(cfg.Timeout))
}

// NewKeywordSearch creates the keyword-search news source.
func NewKeywordSearch() *newsapi.KeywordSearch {
	cfg := newsapi.LoadConfig()
	return newsapi.NewKeywordSearch(cfg, infrahttp.NewHTTPClient(cfg.Timeout))
}

// NewCompanyData creates the company profile/financials/news client.
func NewCompanyData() *finnhub.CompanyData {
	cfg := finnhub.LoadConfig()
	return finnhub.NewCompanyData(cfg, infrahttp.NewHTTPClient(cfg.Timeout))
}

// NewFundamentals creates the fundamentals client with its own long-TTL
// cache, separate from the request-level caches.
func NewFundamentals() *alphavantage.Fundamentals {
	cfg := alphavantage.LoadConfig()
	c := cache.New[*researchentity.FundamentalData](alphavantage.CacheTTL)
	return alphavantage.NewFundamentals(cfg, infrahttp.NewHTTPClient(cfg.Timeout), c)
}

// KeyedIntegrations lists the providers tracked by credential presence only.
// FRED and GNews have keys reserved ahead of their features landing.
func KeyedIntegrations() []statususecase.KeyedIntegration {
	return []statususecase.KeyedIntegration{
		{Name: "Finnhub", Configured: os.Getenv("FINNHUB_KEY") != ""},
		{Name: "Alpha Vantage", Configured: os.Getenv("ALPHA_VANTAGE_KEY") != ""},
		{Name: "FRED", Configured: os.Getenv("FRED_KEY") != ""},
		{Name: "GNews", Configured: os.Getenv("GNEWS_KEY") != ""},
	}
}
