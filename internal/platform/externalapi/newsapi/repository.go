package newsapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"market_dashboard/internal/feature/news/domain/entity"
	"market_dashboard/internal/platform/externalapi/newsapi/dto"
	"market_dashboard/internal/shared/sectors"
)

// ErrNotConfigured is returned when no API key is present.
var ErrNotConfigured = errors.New("newsapi: api key not configured")

// KeywordSearch queries NewsAPI for articles matching the keywords of the
// requested sectors.
type KeywordSearch struct {
	cfg    Config
	client *http.Client
}

// NewKeywordSearch creates a KeywordSearch with the given configuration and
// HTTP client.
func NewKeywordSearch(cfg Config, client *http.Client) *KeywordSearch {
	return &KeywordSearch{cfg: cfg, client: client}
}

// Configured reports whether an API key is present.
func (k *KeywordSearch) Configured() bool {
	return k.cfg.APIKey != ""
}

// BuildQuery flattens the requested sectors' keywords into an OR query.
// An empty sector list yields an empty query.
func BuildQuery(sectorIDs []string) string {
	return strings.Join(sectors.KeywordsFor(sectorIDs), " OR ")
}

// Search fetches articles for the given sector ids. An empty id list is an
// immediate empty result without any upstream call. Articles missing a title
// or url are discarded during normalization.
func (k *KeywordSearch) Search(ctx context.Context, sectorIDs []string) ([]entity.Article, error) {
	if len(sectorIDs) == 0 {
		return nil, nil
	}
	if !k.Configured() {
		return nil, ErrNotConfigured
	}
	query := BuildQuery(sectorIDs)
	if query == "" {
		return nil, nil
	}

	q := url.Values{}
	q.Set("q", query)
	q.Set("language", "en")
	q.Set("sortBy", "publishedAt")
	q.Set("apiKey", k.cfg.APIKey)

	u := fmt.Sprintf("%s?%s", k.cfg.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	res, err := k.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("newsapi http %d", res.StatusCode)
	}

	var body dto.EverythingResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}
	if body.Status != "ok" {
		return nil, fmt.Errorf("newsapi: %s", body.Message)
	}

	now := time.Now().UTC()
	articles := make([]entity.Article, 0, len(body.Articles))
	for _, item := range body.Articles {
		title := strings.TrimSpace(item.Title)
		if title == "" || item.URL == "" {
			continue
		}
		description := strings.TrimSpace(item.Description)

		source := item.Source.Name
		if source == "" {
			source = "Unknown"
		}

		published := now
		if t, err := time.Parse(time.RFC3339, item.PublishedAt); err == nil {
			published = t
		}

		articles = append(articles, entity.Article{
			Title:       title,
			Description: description,
			URL:         item.URL,
			Source:      source,
			PublishedAt: published,
			SectorIDs:   sectors.Match(title + " " + description),
			ImageURL:    item.URLToImage,
		})
	}
	return articles, nil
}
