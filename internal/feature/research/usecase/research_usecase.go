// Package usecase implements the per-symbol research flow: five independent
// facets fetched concurrently and assembled into one best-effort bundle.
package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"market_dashboard/internal/feature/research/domain/entity"
	"market_dashboard/internal/platform/cache"
	"market_dashboard/internal/shared/symbols"
)

// CacheTTL is how long a research bundle stays valid.
const CacheTTL = 120 * time.Second

// ErrInvalidSymbol is returned before any provider call when the requested
// symbol fails validation. It is the only research error surfaced as a
// client fault.
var ErrInvalidSymbol = errors.New("invalid or missing symbol")

// OverviewRepository provides the price-chart overview facet.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type OverviewRepository interface {
	GetOverview(ctx context.Context, symbol string) (*entity.StockOverview, error)
}

// CompanyRepository provides the profile, financials and company-news facets.
type CompanyRepository interface {
	GetProfile(ctx context.Context, symbol string) (*entity.CompanyProfile, error)
	GetFinancials(ctx context.Context, symbol string) (*entity.CompanyFinancials, error)
	GetCompanyNews(ctx context.Context, symbol string) ([]entity.CompanyNewsArticle, error)
}

// FundamentalsRepository provides the long-lived fundamentals facet.
type FundamentalsRepository interface {
	GetFundamentals(ctx context.Context, symbol string) (*entity.FundamentalData, error)
}

// ResearchUsecase assembles the research bundle for one symbol.
type ResearchUsecase struct {
	overview     OverviewRepository
	company      CompanyRepository
	fundamentals FundamentalsRepository
	cache        *cache.Cache[*entity.Bundle]
}

// NewResearchUsecase creates a ResearchUsecase.
func NewResearchUsecase(overview OverviewRepository, company CompanyRepository, fundamentals FundamentalsRepository, c *cache.Cache[*entity.Bundle]) *ResearchUsecase {
	return &ResearchUsecase{overview: overview, company: company, fundamentals: fundamentals, cache: c}
}

// GetResearch validates the symbol, then fetches all five facets
// concurrently. Any facet may fail without failing the bundle: a missing
// facet is simply nil (or empty, for news). Only an invalid symbol is an
// error.
func (u *ResearchUsecase) GetResearch(ctx context.Context, rawSymbol string) (*entity.Bundle, error) {
	sym := symbols.Normalize(rawSymbol)
	if !symbols.Valid(sym) {
		return nil, ErrInvalidSymbol
	}

	return u.cache.GetOrFetch(ctx, "research:"+sym, CacheTTL, func(ctx context.Context) (*entity.Bundle, error) {
		return u.fetchBundle(ctx, sym), nil
	})
}

// fetchBundle runs the five-way fan-out and the market-cap backfill.
func (u *ResearchUsecase) fetchBundle(ctx context.Context, sym string) *entity.Bundle {
	bundle := &entity.Bundle{News: []entity.CompanyNewsArticle{}}

	var wg sync.WaitGroup
	facet := func(name string, fetch func(ctx context.Context) error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fetch(ctx); err != nil {
				slog.Warn("research facet unavailable", "facet", name, "symbol", sym, "error", err)
			}
		}()
	}

	facet("overview", func(ctx context.Context) error {
		o, err := u.overview.GetOverview(ctx, sym)
		if err == nil {
			bundle.Overview = o
		}
		return err
	})
	facet("profile", func(ctx context.Context) error {
		p, err := u.company.GetProfile(ctx, sym)
		if err == nil {
			bundle.Profile = p
		}
		return err
	})
	facet("financials", func(ctx context.Context) error {
		f, err := u.company.GetFinancials(ctx, sym)
		if err == nil {
			bundle.Financials = f
		}
		return err
	})
	facet("news", func(ctx context.Context) error {
		n, err := u.company.GetCompanyNews(ctx, sym)
		if err == nil && n != nil {
			bundle.News = n
		}
		return err
	})
	facet("fundamentals", func(ctx context.Context) error {
		f, err := u.fundamentals.GetFundamentals(ctx, sym)
		if err == nil {
			bundle.Fundamentals = f
		}
		return err
	})
	wg.Wait()

	// The chart provider omits market cap; the profile provider reports it in
	// millions. Backfill so the overview is self-contained.
	if bundle.Overview != nil && bundle.Overview.MarketCap == 0 &&
		bundle.Profile != nil && bundle.Profile.MarketCapitalization > 0 {
		bundle.Overview.MarketCap = bundle.Profile.MarketCapitalization * 1e6
	}
	return bundle
}
