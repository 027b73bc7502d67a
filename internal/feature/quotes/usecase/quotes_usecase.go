// Package usecase implements the batch quote flow: symbol sanitization,
// per-symbol concurrent fetch and caching.
package usecase

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"market_dashboard/internal/feature/quotes/domain/entity"
	"market_dashboard/internal/platform/cache"
	"market_dashboard/internal/shared/symbols"
)

// CacheTTL is shorter than the news TTL because prices move faster than
// headlines.
const CacheTTL = 60 * time.Second

// DefaultSymbols is the sector-ETF basket served when the caller supplies no
// symbols at all.
var DefaultSymbols = []string{"XLK", "XLE", "XLY", "XLF", "XLV", "XLRE", "GLD", "XAR"}

// MarketRepository provides a single-symbol quote lookup.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type MarketRepository interface {
	GetQuote(ctx context.Context, symbol string) (*entity.Quote, error)
}

// QuotesUsecase resolves a batch of ticker symbols to quotes.
type QuotesUsecase struct {
	market MarketRepository
	cache  *cache.Cache[[]entity.Quote]
}

// NewQuotesUsecase creates a QuotesUsecase.
func NewQuotesUsecase(market MarketRepository, c *cache.Cache[[]entity.Quote]) *QuotesUsecase {
	return &QuotesUsecase{market: market, cache: c}
}

// GetQuotes returns quotes for the requested symbols, in request order.
// An empty request falls back to the default basket. A request where every
// symbol is rejected by sanitization returns an empty result without touching
// the provider: the caller asked for specific things and none of them were
// valid.
func (u *QuotesUsecase) GetQuotes(ctx context.Context, requested []string) ([]entity.Quote, error) {
	syms := symbols.Sanitize(requested)
	if len(syms) == 0 {
		if len(requested) > 0 {
			return []entity.Quote{}, nil
		}
		syms = DefaultSymbols
	}

	return u.cache.GetOrFetch(ctx, quotesCacheKey(syms), CacheTTL, func(ctx context.Context) ([]entity.Quote, error) {
		return u.fetchAll(ctx, syms), nil
	})
}

// fetchAll fans out one lookup per symbol. Failed symbols are dropped from
// the result; they never abort the batch.
func (u *QuotesUsecase) fetchAll(ctx context.Context, syms []string) []entity.Quote {
	results := make([]*entity.Quote, len(syms))
	var wg sync.WaitGroup
	for i, sym := range syms {
		wg.Add(1)
		go func(i int, sym string) {
			defer wg.Done()
			q, err := u.market.GetQuote(ctx, sym)
			if err != nil {
				slog.Warn("quote lookup failed", "symbol", sym, "error", err)
				return
			}
			results[i] = q
		}(i, sym)
	}
	wg.Wait()

	quotes := make([]entity.Quote, 0, len(syms))
	for _, q := range results {
		if q != nil {
			quotes = append(quotes, *q)
		}
	}
	return quotes
}

// quotesCacheKey sorts the symbols so permutations of one basket share a
// cache entry.
func quotesCacheKey(syms []string) string {
	sorted := make([]string, len(syms))
	copy(sorted, syms)
	sort.Strings(sorted)
	return "quotes:" + strings.Join(sorted, ",")
}
