package alphavantage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"market_dashboard/internal/feature/research/domain/entity"
	"market_dashboard/internal/platform/cache"
)

// ErrNotConfigured is returned when no API key is present.
var ErrNotConfigured = errors.New("alphavantage: api key not configured")

// ErrUnavailable is returned when the payload signals a rate limit or an
// unknown symbol. The record is unavailable as a whole, never per field.
var ErrUnavailable = errors.New("alphavantage: overview unavailable")

// Fundamentals fetches company overview metrics. Results are cached for
// CacheTTL through an injected cache so the free-tier rate limit is only hit
// once a day per symbol.
type Fundamentals struct {
	cfg    Config
	client *http.Client
	cache  *cache.Cache[*entity.FundamentalData]
}

// NewFundamentals creates a Fundamentals client. The cache is injected so
// tests can construct isolated instances.
func NewFundamentals(cfg Config, client *http.Client, c *cache.Cache[*entity.FundamentalData]) *Fundamentals {
	return &Fundamentals{cfg: cfg, client: client, cache: c}
}

// Configured reports whether an API key is present.
func (a *Fundamentals) Configured() bool {
	return a.cfg.APIKey != ""
}

// GetFundamentals fetches the valuation/profitability/growth/analyst record
// for symbol, serving from cache within the 24h window.
func (a *Fundamentals) GetFundamentals(ctx context.Context, symbol string) (*entity.FundamentalData, error) {
	if !a.Configured() {
		return nil, ErrNotConfigured
	}
	return a.cache.GetOrFetch(ctx, "av-overview:"+symbol, CacheTTL, func(ctx context.Context) (*entity.FundamentalData, error) {
		return a.fetchOverview(ctx, symbol)
	})
}

func (a *Fundamentals) fetchOverview(ctx context.Context, symbol string) (*entity.FundamentalData, error) {
	q := url.Values{}
	q.Set("function", "OVERVIEW")
	q.Set("symbol", symbol)
	q.Set("apikey", a.cfg.APIKey)

	u := fmt.Sprintf("%s?%s", a.cfg.BaseURL, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	res, err := a.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("alphavantage http %d", res.StatusCode)
	}

	// The payload is flat string keys; decode loosely because the provider
	// reports every metric as a string.
	var body map[string]string
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}

	// Alpha Vantage signals rate limiting with a "Note" field and unknown
	// symbols with "Error Message" or an empty record.
	if body["Note"] != "" || body["Error Message"] != "" || body["Symbol"] == "" {
		return nil, ErrUnavailable
	}

	return &entity.FundamentalData{
		PEGRatio:                toNum(body["PEGRatio"]),
		ForwardPE:               toNum(body["ForwardPE"]),
		PriceToBook:             toNum(body["PriceToBookRatio"]),
		PriceToSales:            toNum(body["PriceToSalesRatioTTM"]),
		EVToRevenue:             toNum(body["EVToRevenue"]),
		EVToEBITDA:              toNum(body["EVToEBITDA"]),
		ProfitMargin:            toNum(body["ProfitMargin"]),
		OperatingMargin:         toNum(body["OperatingMarginTTM"]),
		ReturnOnEquity:          toNum(body["ReturnOnEquityTTM"]),
		ReturnOnAssets:          toNum(body["ReturnOnAssetsTTM"]),
		QuarterlyRevenueGrowth:  toNum(body["QuarterlyRevenueGrowthYOY"]),
		QuarterlyEarningsGrowth: toNum(body["QuarterlyEarningsGrowthYOY"]),
		AnalystTargetPrice:      toNum(body["AnalystTargetPrice"]),
		AnalystStrongBuy:        toNum(body["AnalystRatingStrongBuy"]),
		AnalystBuy:              toNum(body["AnalystRatingBuy"]),
		AnalystHold:             toNum(body["AnalystRatingHold"]),
		AnalystSell:             toNum(body["AnalystRatingSell"]),
		AnalystStrongSell:       toNum(body["AnalystRatingStrongSell"]),
	}, nil
}

// toNum converts a provider metric string to a number. "None" and "-" mark
// absent values; anything non-numeric is treated the same way.
func toNum(s string) *float64 {
	if s == "" || s == "None" || s == "-" {
		return nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &n
}
