package finnhub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"market_dashboard/internal/feature/research/domain/entity"
	"market_dashboard/internal/platform/externalapi/finnhub/dto"
)

// ErrNotConfigured is returned when no API token is present.
var ErrNotConfigured = errors.New("finnhub: api key not configured")

// companyNewsLimit caps how many recent headlines one research bundle carries.
const companyNewsLimit = 50

// CompanyData fetches the profile, financials and company-news facets from
// Finnhub. The three calls are independent: each returns its facet or an
// error, and the consumer absorbs failures per facet.
type CompanyData struct {
	cfg    Config
	client *http.Client
}

// NewCompanyData creates a CompanyData client with the given configuration
// and HTTP client.
func NewCompanyData(cfg Config, client *http.Client) *CompanyData {
	return &CompanyData{cfg: cfg, client: client}
}

// Configured reports whether an API token is present.
func (f *CompanyData) Configured() bool {
	return f.cfg.APIKey != ""
}

// get performs an authenticated GET against path and decodes the body into out.
func (f *CompanyData) get(ctx context.Context, path string, params url.Values, out any) error {
	if !f.Configured() {
		return ErrNotConfigured
	}
	params.Set("token", f.cfg.APIKey)

	u := fmt.Sprintf("%s%s?%s", f.cfg.BaseURL, path, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	res, err := f.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return fmt.Errorf("finnhub http %d", res.StatusCode)
	}
	return json.NewDecoder(res.Body).Decode(out)
}

// GetProfile fetches the company identity facet. A payload without a company
// name is treated as no data.
func (f *CompanyData) GetProfile(ctx context.Context, symbol string) (*entity.CompanyProfile, error) {
	params := url.Values{}
	params.Set("symbol", symbol)

	var body dto.ProfileResponse
	if err := f.get(ctx, "/stock/profile2", params, &body); err != nil {
		return nil, err
	}
	if body.Name == "" {
		return nil, fmt.Errorf("finnhub: no profile for %s", symbol)
	}

	return &entity.CompanyProfile{
		Name:                 body.Name,
		Logo:                 body.Logo,
		Industry:             body.FinnhubIndustry,
		Country:              body.Country,
		WebURL:               body.WebURL,
		MarketCapitalization: body.MarketCapitalization,
	}, nil
}

// GetFinancials fetches the ratio facet from the flat metric map.
func (f *CompanyData) GetFinancials(ctx context.Context, symbol string) (*entity.CompanyFinancials, error) {
	params := url.Values{}
	params.Set("symbol", symbol)
	params.Set("metric", "all")

	var body dto.MetricResponse
	if err := f.get(ctx, "/stock/metric", params, &body); err != nil {
		return nil, err
	}

	return &entity.CompanyFinancials{
		PERatio:       metricFloat(body.Metric, "peBasicExclExtraTTM"),
		EPS:           metricFloat(body.Metric, "epsBasicExclExtraItemsTTM"),
		Beta:          metricFloat(body.Metric, "beta"),
		DividendYield: metricFloat(body.Metric, "dividendYieldIndicatedAnnual"),
	}, nil
}

// GetCompanyNews fetches the last week of company headlines, capped at
// companyNewsLimit.
func (f *CompanyData) GetCompanyNews(ctx context.Context, symbol string) ([]entity.CompanyNewsArticle, error) {
	now := time.Now().UTC()
	params := url.Values{}
	params.Set("symbol", symbol)
	params.Set("from", now.AddDate(0, 0, -7).Format("2006-01-02"))
	params.Set("to", now.Format("2006-01-02"))

	var body []dto.CompanyNewsItem
	if err := f.get(ctx, "/company-news", params, &body); err != nil {
		return nil, err
	}

	if len(body) > companyNewsLimit {
		body = body[:companyNewsLimit]
	}
	news := make([]entity.CompanyNewsArticle, 0, len(body))
	for _, item := range body {
		source := item.Source
		if source == "" {
			source = "Unknown"
		}
		news = append(news, entity.CompanyNewsArticle{
			Headline: item.Headline,
			Summary:  item.Summary,
			URL:      item.URL,
			Source:   source,
			Datetime: item.Datetime,
			Image:    item.Image,
		})
	}
	return news, nil
}

// metricFloat pulls one numeric value out of the untyped metric map,
// returning nil when the key is absent or not a number.
func metricFloat(m map[string]any, key string) *float64 {
	v, ok := m[key]
	if !ok {
		return nil
	}
	f, ok := v.(float64)
	if !ok {
		return nil
	}
	return &f
}
