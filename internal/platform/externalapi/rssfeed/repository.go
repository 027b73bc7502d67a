package rssfeed

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/mmcdole/gofeed"

	"market_dashboard/internal/feature/news/domain/entity"
	"market_dashboard/internal/shared/sectors"
)

// FeedSource pulls and normalizes articles from the configured RSS feeds.
// The source is category-agnostic: it always returns the full pull and
// classification happens per item.
type FeedSource struct {
	cfg    Config
	parser *gofeed.Parser
}

// NewFeedSource creates a FeedSource using the given HTTP client for all
// feed requests.
func NewFeedSource(cfg Config, client *http.Client) *FeedSource {
	p := gofeed.NewParser()
	p.Client = client
	return &FeedSource{cfg: cfg, parser: p}
}

// FetchArticles pulls every configured feed concurrently and returns the
// normalized union. A failing feed is logged and skipped; it never aborts the
// other feeds. Items missing a title or link are discarded before they reach
// any aggregation, and duplicate links within the pull keep the first
// occurrence in feed-configuration order.
func (f *FeedSource) FetchArticles(ctx context.Context) ([]entity.Article, error) {
	feeds := make([]*gofeed.Feed, len(f.cfg.FeedURLs))

	var wg sync.WaitGroup
	for i, feedURL := range f.cfg.FeedURLs {
		wg.Add(1)
		go func(i int, feedURL string) {
			defer wg.Done()
			feed, err := f.parser.ParseURLWithContext(feedURL, ctx)
			if err != nil {
				slog.Warn("rss feed unavailable", "url", feedURL, "error", err)
				return
			}
			feeds[i] = feed
		}(i, feedURL)
	}
	wg.Wait()

	now := time.Now().UTC()
	seen := make(map[string]struct{})
	var articles []entity.Article

	// Iterate in configuration order, not completion order, so the
	// first-occurrence dedup is deterministic.
	for _, feed := range feeds {
		if feed == nil {
			continue
		}
		for _, item := range feed.Items {
			title := strings.TrimSpace(item.Title)
			link := strings.TrimSpace(item.Link)
			if title == "" || link == "" {
				continue
			}
			if _, dup := seen[link]; dup {
				continue
			}
			seen[link] = struct{}{}

			description := strings.TrimSpace(item.Description)
			if description == "" {
				description = strings.TrimSpace(item.Content)
			}

			published := now
			if item.PublishedParsed != nil {
				published = *item.PublishedParsed
			}

			articles = append(articles, entity.Article{
				Title:       title,
				Description: description,
				URL:         link,
				Source:      sourceName(item, feed),
				PublishedAt: published,
				SectorIDs:   sectors.Match(title + " " + description),
			})
		}
	}
	return articles, nil
}

// sourceName prefers the item author, then the feed title.
func sourceName(item *gofeed.Item, feed *gofeed.Feed) string {
	if item.Author != nil && item.Author.Name != "" {
		return item.Author.Name
	}
	if feed.Title != "" {
		return feed.Title
	}
	return "RSS"
}
