package yahoo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"time"

	quotesentity "market_dashboard/internal/feature/quotes/domain/entity"
	researchentity "market_dashboard/internal/feature/research/domain/entity"
	"market_dashboard/internal/platform/externalapi/yahoo/dto"
)

// ErrNoPrice is returned when the chart payload carries no usable price for
// the requested symbol.
var ErrNoPrice = errors.New("yahoo: no usable price")

// YahooMarket fetches quote and overview data from the Yahoo Finance chart
// API.
type YahooMarket struct {
	cfg    Config
	client *http.Client
}

// NewYahooMarket creates a new YahooMarket with the given configuration and
// HTTP client.
func NewYahooMarket(cfg Config, client *http.Client) *YahooMarket {
	return &YahooMarket{cfg: cfg, client: client}
}

// fetchChart retrieves one chart result for symbol over the given range.
func (y *YahooMarket) fetchChart(ctx context.Context, symbol, rng string) (*dto.ChartResult, error) {
	q := url.Values{}
	q.Set("interval", "1d")
	q.Set("range", rng)

	u := fmt.Sprintf("%s/%s?%s", y.cfg.BaseURL, url.PathEscape(symbol), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	// The chart endpoint rejects requests without a browser-like agent.
	req.Header.Set("User-Agent", "Mozilla/5.0")

	res, err := y.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("yahoo http %d", res.StatusCode)
	}

	var body dto.ChartResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}
	if body.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo: %s", body.Chart.Error.Description)
	}
	if len(body.Chart.Result) == 0 {
		return nil, fmt.Errorf("yahoo: empty result for %s", symbol)
	}
	return &body.Chart.Result[0], nil
}

// GetQuote fetches the latest price snapshot for a single symbol. A payload
// without a usable price yields ErrNoPrice; the caller treats any error as
// "no entry for this symbol".
func (y *YahooMarket) GetQuote(ctx context.Context, symbol string) (*quotesentity.Quote, error) {
	result, err := y.fetchChart(ctx, symbol, "1d")
	if err != nil {
		return nil, err
	}

	meta := result.Meta
	if meta.RegularMarketPrice == nil {
		return nil, ErrNoPrice
	}

	price := *meta.RegularMarketPrice
	prevClose := price
	if meta.ChartPreviousClose != nil {
		prevClose = *meta.ChartPreviousClose
	}
	change, changePercent := changeFrom(price, prevClose)

	sym := meta.Symbol
	if sym == "" {
		sym = symbol
	}

	return &quotesentity.Quote{
		Symbol:        sym,
		Price:         price,
		Change:        change,
		ChangePercent: changePercent,
		Name:          displayName(meta),
		DayHigh:       meta.RegularMarketDayHigh,
		DayLow:        meta.RegularMarketDayLow,
	}, nil
}

// GetOverview fetches the research overview facet: the quote snapshot plus
// 52-week range, volume and a month of daily closes for charting.
func (y *YahooMarket) GetOverview(ctx context.Context, symbol string) (*researchentity.StockOverview, error) {
	result, err := y.fetchChart(ctx, symbol, "1mo")
	if err != nil {
		return nil, err
	}

	meta := result.Meta
	if meta.RegularMarketPrice == nil {
		return nil, ErrNoPrice
	}

	price := *meta.RegularMarketPrice
	prevClose := price
	if meta.ChartPreviousClose != nil {
		prevClose = *meta.ChartPreviousClose
	}
	change, changePercent := changeFrom(price, prevClose)

	sym := meta.Symbol
	if sym == "" {
		sym = symbol
	}

	chartData, chartDates := chartSeries(result)

	return &researchentity.StockOverview{
		Symbol:           sym,
		Name:             displayName(meta),
		Price:            price,
		Change:           change,
		ChangePercent:    changePercent,
		DayHigh:          meta.RegularMarketDayHigh,
		DayLow:           meta.RegularMarketDayLow,
		FiftyTwoWeekHigh: meta.FiftyTwoWeekHigh,
		FiftyTwoWeekLow:  meta.FiftyTwoWeekLow,
		Volume:           meta.RegularMarketVolume,
		ChartData:        chartData,
		ChartDates:       chartDates,
	}, nil
}

// chartSeries pairs the close series with its timestamps, skipping slots
// where the provider reported no close (market holidays mid-range).
func chartSeries(result *dto.ChartResult) ([]float64, []string) {
	if len(result.Indicators.Quote) == 0 {
		return nil, nil
	}
	closes := result.Indicators.Quote[0].Close

	data := make([]float64, 0, len(closes))
	dates := make([]string, 0, len(closes))
	for i, c := range closes {
		if c == nil || i >= len(result.Timestamp) {
			continue
		}
		data = append(data, round2(*c))
		dates = append(dates, time.Unix(result.Timestamp[i], 0).UTC().Format("2006-01-02"))
	}
	return data, dates
}

// changeFrom derives the absolute and percentage change against the previous
// close, both rounded to two decimals. A zero previous close yields zero
// percent rather than a division blowup.
func changeFrom(price, prevClose float64) (change, changePercent float64) {
	change = price - prevClose
	if prevClose != 0 {
		changePercent = change / prevClose * 100
	}
	return round2(change), round2(changePercent)
}

func displayName(meta dto.ChartMeta) string {
	if meta.ShortName != "" {
		return meta.ShortName
	}
	return meta.LongName
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
