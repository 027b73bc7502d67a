// Package usecase implements the service-health report: live probes for the
// active providers plus credential checks for key-only integrations.
package usecase

import (
	"context"
	"sync"

	newsentity "market_dashboard/internal/feature/news/domain/entity"
	quotesentity "market_dashboard/internal/feature/quotes/domain/entity"
	"market_dashboard/internal/feature/status/domain/entity"
)

// probeSymbol is a liquid index always expected to resolve, so a failed
// lookup means the provider is down rather than the symbol unknown.
const probeSymbol = "^GSPC"

// QuoteProbe is the live probe for the market-data provider.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type QuoteProbe interface {
	GetQuote(ctx context.Context, symbol string) (*quotesentity.Quote, error)
}

// FeedProbe is the live probe for the feed-pull news source.
type FeedProbe interface {
	FetchArticles(ctx context.Context) ([]newsentity.Article, error)
}

// SearchProbe is the live probe for the keyword-search news source. The
// credential check comes first: without a key the probe is skipped.
type SearchProbe interface {
	Configured() bool
	Search(ctx context.Context, sectorIDs []string) ([]newsentity.Article, error)
}

// KeyedIntegration is a provider whose health we only assert to the level of
// "a credential is present": either it is wired elsewhere through its own
// adapter, or it is reserved for a planned feature.
type KeyedIntegration struct {
	Name       string
	Configured bool
}

// StatusUsecase produces the per-provider health report.
type StatusUsecase struct {
	market QuoteProbe
	feed   FeedProbe
	search SearchProbe
	keyed  []KeyedIntegration
}

// NewStatusUsecase creates a StatusUsecase. The keyed slice order is
// preserved in the report.
func NewStatusUsecase(market QuoteProbe, feed FeedProbe, search SearchProbe, keyed []KeyedIntegration) *StatusUsecase {
	return &StatusUsecase{market: market, feed: feed, search: search, keyed: keyed}
}

// CheckAll probes every provider concurrently and returns the report in a
// fixed order: the three live-probed providers first, then the key-only
// integrations. Results are never cached; a status page exists to show the
// present, not the past.
func (u *StatusUsecase) CheckAll(ctx context.Context) []entity.ServiceHealth {
	probed := make([]entity.ServiceHealth, 3)
	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		probed[0] = u.probeMarket(ctx)
	}()
	go func() {
		defer wg.Done()
		probed[1] = u.probeFeed(ctx)
	}()
	go func() {
		defer wg.Done()
		probed[2] = u.probeSearch(ctx)
	}()
	wg.Wait()

	report := make([]entity.ServiceHealth, 0, len(probed)+len(u.keyed))
	report = append(report, probed...)
	for _, k := range u.keyed {
		if k.Configured {
			report = append(report, entity.ServiceHealth{Name: k.Name, Status: entity.StateUnused, Message: "API key set, not used yet"})
		} else {
			report = append(report, entity.ServiceHealth{Name: k.Name, Status: entity.StateUnconfigured, Message: "No API key"})
		}
	}
	return report
}

func (u *StatusUsecase) probeMarket(ctx context.Context) entity.ServiceHealth {
	h := entity.ServiceHealth{Name: "Yahoo Finance"}
	q, err := u.market.GetQuote(ctx, probeSymbol)
	if err != nil || q == nil {
		h.Status = entity.StateDown
		h.Message = "Quote lookup failed"
		return h
	}
	h.Status = entity.StateOK
	h.Message = "Connected"
	return h
}

func (u *StatusUsecase) probeFeed(ctx context.Context) entity.ServiceHealth {
	h := entity.ServiceHealth{Name: "RSS Feeds"}
	articles, err := u.feed.FetchArticles(ctx)
	if err != nil || len(articles) == 0 {
		h.Status = entity.StateDown
		h.Message = "No feeds reachable"
		return h
	}
	h.Status = entity.StateOK
	h.Message = "Connected"
	return h
}

func (u *StatusUsecase) probeSearch(ctx context.Context) entity.ServiceHealth {
	h := entity.ServiceHealth{Name: "NewsAPI"}
	if !u.search.Configured() {
		h.Status = entity.StateUnconfigured
		h.Message = "No API key"
		return h
	}
	articles, err := u.search.Search(ctx, []string{"technology"})
	if err != nil || len(articles) == 0 {
		h.Status = entity.StateDown
		h.Message = "Search probe failed"
		return h
	}
	h.Status = entity.StateOK
	h.Message = "Connected"
	return h
}
