package newsapi_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"market_dashboard/internal/platform/externalapi/newsapi"
)

func newSearch(srv *httptest.Server, apiKey string) *newsapi.KeywordSearch {
	cfg := newsapi.Config{APIKey: apiKey, BaseURL: srv.URL, Timeout: 5 * time.Second}
	return newsapi.NewKeywordSearch(cfg, srv.Client())
}

func TestKeywordSearch_Search(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		assert.Equal(t, "en", r.URL.Query().Get("language"))
		assert.Equal(t, "publishedAt", r.URL.Query().Get("sortBy"))
		assert.Equal(t, "test-key", r.URL.Query().Get("apiKey"))
		fmt.Fprint(w, `{"status":"ok","articles":[
			{"title":"Bitcoin rallies","description":"crypto regulation news","url":"https://example.com/btc",
			 "source":{"name":"CoinDesk"},"publishedAt":"2026-02-18T12:00:00Z","urlToImage":"https://img.example.com/1"},
			{"title":"","description":"missing title","url":"https://example.com/x"},
			{"title":"No URL","description":"missing url","url":""}
		]}`)
	}))
	defer srv.Close()

	articles, err := newSearch(srv, "test-key").Search(context.Background(), []string{"crypto"})
	require.NoError(t, err)

	assert.Contains(t, gotQuery, "bitcoin OR ethereum")

	require.Len(t, articles, 1, "articles missing title or url are discarded")
	a := articles[0]
	assert.Equal(t, "Bitcoin rallies", a.Title)
	assert.Equal(t, "CoinDesk", a.Source)
	assert.Equal(t, "https://img.example.com/1", a.ImageURL)
	assert.Equal(t, time.Date(2026, 2, 18, 12, 0, 0, 0, time.UTC), a.PublishedAt)
	assert.Contains(t, a.SectorIDs, "crypto")
}

func TestKeywordSearch_Search_EmptySectorsSkipsCall(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	articles, err := newSearch(srv, "test-key").Search(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, articles)
	assert.False(t, called, "no sectors means no upstream call")
}

func TestKeywordSearch_Search_NotConfigured(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	_, err := newSearch(srv, "").Search(context.Background(), []string{"crypto"})
	assert.ErrorIs(t, err, newsapi.ErrNotConfigured)
}

func TestKeywordSearch_Search_ProviderStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":"error","message":"apiKeyExhausted"}`)
	}))
	defer srv.Close()

	_, err := newSearch(srv, "test-key").Search(context.Background(), []string{"crypto"})
	assert.ErrorContains(t, err, "apiKeyExhausted")
}

func TestKeywordSearch_Search_SourceFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":"ok","articles":[
			{"title":"Gold climbs","description":"","url":"https://example.com/gold","source":{"name":""}}
		]}`)
	}))
	defer srv.Close()

	articles, err := newSearch(srv, "test-key").Search(context.Background(), []string{"commodities"})
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "Unknown", articles[0].Source)
}

func TestBuildQuery(t *testing.T) {
	assert.Equal(t, "", newsapi.BuildQuery(nil))
	assert.Equal(t,
		"gold OR silver OR wheat OR corn OR commodity futures OR inflation hedge",
		newsapi.BuildQuery([]string{"commodities"}))
}
