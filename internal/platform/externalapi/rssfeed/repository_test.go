package rssfeed_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"market_dashboard/internal/platform/externalapi/rssfeed"
)

const feedXML = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Market Wire</title>
    <item>
      <title>Fed rate decision looms</title>
      <link>https://example.com/fed-rate</link>
      <description>Markets brace for the interest rate announcement.</description>
      <pubDate>Wed, 18 Feb 2026 12:00:00 GMT</pubDate>
    </item>
    <item>
      <title>No link here</title>
      <description>This item must be discarded.</description>
    </item>
    <item>
      <title></title>
      <link>https://example.com/untitled</link>
    </item>
    <item>
      <title>Duplicate story</title>
      <link>https://example.com/fed-rate</link>
      <description>Same URL as the first item.</description>
    </item>
  </channel>
</rss>`

const otherFeedXML = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Chip Daily</title>
    <item>
      <title>Semiconductor demand surges</title>
      <link>https://example.com/chips</link>
      <description>Fabs run at capacity.</description>
      <pubDate>Wed, 18 Feb 2026 09:30:00 GMT</pubDate>
    </item>
  </channel>
</rss>`

func serveXML(body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprint(w, body)
	}))
}

func TestFeedSource_FetchArticles(t *testing.T) {
	srv := serveXML(feedXML)
	defer srv.Close()

	cfg := rssfeed.Config{FeedURLs: []string{srv.URL}, Timeout: 5 * time.Second}
	source := rssfeed.NewFeedSource(cfg, srv.Client())

	articles, err := source.FetchArticles(context.Background())
	require.NoError(t, err)

	// Items missing title or link are dropped, duplicate links keep the first.
	require.Len(t, articles, 1)
	a := articles[0]
	assert.Equal(t, "Fed rate decision looms", a.Title)
	assert.Equal(t, "https://example.com/fed-rate", a.URL)
	assert.Equal(t, "Market Wire", a.Source, "source falls back to the feed title")
	assert.Equal(t, time.Date(2026, 2, 18, 12, 0, 0, 0, time.UTC), a.PublishedAt.UTC())
	assert.Equal(t, []string{"finance"}, a.SectorIDs, "classification happens at normalization")
}

func TestFeedSource_FetchArticles_MultipleFeedsInOrder(t *testing.T) {
	srv1 := serveXML(feedXML)
	defer srv1.Close()
	srv2 := serveXML(otherFeedXML)
	defer srv2.Close()

	cfg := rssfeed.Config{FeedURLs: []string{srv1.URL, srv2.URL}, Timeout: 5 * time.Second}
	source := rssfeed.NewFeedSource(cfg, srv1.Client())

	articles, err := source.FetchArticles(context.Background())
	require.NoError(t, err)

	require.Len(t, articles, 2)
	assert.Equal(t, "Fed rate decision looms", articles[0].Title, "configuration order, not completion order")
	assert.Equal(t, "Semiconductor demand surges", articles[1].Title)
	assert.Equal(t, []string{"technology"}, articles[1].SectorIDs)
}

func TestFeedSource_FetchArticles_FailingFeedIsolated(t *testing.T) {
	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer broken.Close()
	healthy := serveXML(otherFeedXML)
	defer healthy.Close()

	cfg := rssfeed.Config{FeedURLs: []string{broken.URL, healthy.URL}, Timeout: 5 * time.Second}
	source := rssfeed.NewFeedSource(cfg, healthy.Client())

	articles, err := source.FetchArticles(context.Background())
	require.NoError(t, err)

	require.Len(t, articles, 1)
	assert.Equal(t, "Semiconductor demand surges", articles[0].Title)
}

func TestFeedSource_FetchArticles_AllFeedsDown(t *testing.T) {
	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer broken.Close()

	cfg := rssfeed.Config{FeedURLs: []string{broken.URL}, Timeout: 5 * time.Second}
	source := rssfeed.NewFeedSource(cfg, broken.Client())

	articles, err := source.FetchArticles(context.Background())
	require.NoError(t, err)
	assert.Empty(t, articles)
}
