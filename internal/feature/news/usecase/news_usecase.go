// Package usecase implements the news aggregation flow: concurrent source
// fan-out, merge, deduplication, sector filtering and caching.
package usecase

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"market_dashboard/internal/feature/news/domain/entity"
	"market_dashboard/internal/platform/cache"
)

// CacheTTL is how long one merged news result stays valid.
const CacheTTL = 90 * time.Second

// FeedRepository is the feed-pull source. It is source-agnostic to the
// requested sectors and always contributes its full pull.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type FeedRepository interface {
	FetchArticles(ctx context.Context) ([]entity.Article, error)
}

// SearchRepository is the keyword-search source, queried only when at least
// one sector is requested.
type SearchRepository interface {
	Search(ctx context.Context, sectorIDs []string) ([]entity.Article, error)
}

// NewsUsecase aggregates the two news sources into one deduplicated, sorted
// feed.
type NewsUsecase struct {
	feed   FeedRepository
	search SearchRepository
	cache  *cache.Cache[[]entity.Article]
}

// NewNewsUsecase creates a NewsUsecase. The cache is injected so tests can
// construct isolated instances.
func NewNewsUsecase(feed FeedRepository, search SearchRepository, c *cache.Cache[[]entity.Article]) *NewsUsecase {
	return &NewsUsecase{feed: feed, search: search, cache: c}
}

// GetNews returns the merged feed for the requested sector ids. Both sources
// fail independently: a failing source degrades to an empty contribution and
// the caller always receives a best-effort result.
func (u *NewsUsecase) GetNews(ctx context.Context, sectorIDs []string) ([]entity.Article, error) {
	return u.cache.GetOrFetch(ctx, newsCacheKey(sectorIDs), CacheTTL, func(ctx context.Context) ([]entity.Article, error) {
		return u.fetchMerged(ctx, sectorIDs), nil
	})
}

// fetchMerged runs the fan-out and applies the merge policy.
func (u *NewsUsecase) fetchMerged(ctx context.Context, sectorIDs []string) []entity.Article {
	var (
		wg         sync.WaitGroup
		feedResult []entity.Article
		searchRes  []entity.Article
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		articles, err := u.feed.FetchArticles(ctx)
		if err != nil {
			slog.Warn("feed source unavailable", "error", err)
			return
		}
		feedResult = articles
	}()

	// The keyword source is only consulted when sectors were requested;
	// otherwise it contributes an immediate empty result.
	if len(sectorIDs) > 0 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			articles, err := u.search.Search(ctx, sectorIDs)
			if err != nil {
				slog.Warn("keyword-search source unavailable", "error", err)
				return
			}
			searchRes = articles
		}()
	}
	wg.Wait()

	// Deduplicate by URL keeping the first occurrence: feed-pull results come
	// first, so the feed source wins ties. Fixed policy, not configurable.
	seen := make(map[string]struct{}, len(feedResult)+len(searchRes))
	merged := make([]entity.Article, 0, len(feedResult)+len(searchRes))
	for _, a := range append(feedResult, searchRes...) {
		if _, dup := seen[a.URL]; dup {
			continue
		}
		seen[a.URL] = struct{}{}
		merged = append(merged, a)
	}

	if len(sectorIDs) > 0 {
		filtered := merged[:0]
		for _, a := range merged {
			if a.MatchesAny(sectorIDs) {
				filtered = append(filtered, a)
			}
		}
		merged = filtered
	}

	// Newest first; merge order breaks ties.
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].PublishedAt.After(merged[j].PublishedAt)
	})
	return merged
}

// newsCacheKey derives the cache key from the sorted sector ids, so the order
// the caller listed them in cannot create spurious misses.
func newsCacheKey(sectorIDs []string) string {
	ids := make([]string, len(sectorIDs))
	copy(ids, sectorIDs)
	sort.Strings(ids)
	return "news:" + strings.Join(ids, ",")
}
