package finnhub_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"market_dashboard/internal/platform/externalapi/finnhub"
)

func newClient(srv *httptest.Server, apiKey string) *finnhub.CompanyData {
	cfg := finnhub.Config{APIKey: apiKey, BaseURL: srv.URL, Timeout: 5 * time.Second}
	return finnhub.NewCompanyData(cfg, srv.Client())
}

func TestCompanyData_GetProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/stock/profile2", r.URL.Path)
		assert.Equal(t, "AAPL", r.URL.Query().Get("symbol"))
		assert.Equal(t, "test-token", r.URL.Query().Get("token"))
		fmt.Fprint(w, `{"name":"Apple Inc","logo":"https://logo.example.com/aapl.png",
			"finnhubIndustry":"Technology","country":"US","weburl":"https://apple.com",
			"marketCapitalization":2870000}`)
	}))
	defer srv.Close()

	p, err := newClient(srv, "test-token").GetProfile(context.Background(), "AAPL")
	require.NoError(t, err)

	assert.Equal(t, "Apple Inc", p.Name)
	assert.Equal(t, "Technology", p.Industry)
	assert.Equal(t, "US", p.Country)
	assert.Equal(t, 2870000.0, p.MarketCapitalization, "delivered in millions")
}

func TestCompanyData_GetProfile_EmptyPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	}))
	defer srv.Close()

	_, err := newClient(srv, "test-token").GetProfile(context.Background(), "NOPE")
	assert.ErrorContains(t, err, "no profile")
}

func TestCompanyData_GetProfile_NotConfigured(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	_, err := newClient(srv, "").GetProfile(context.Background(), "AAPL")
	assert.ErrorIs(t, err, finnhub.ErrNotConfigured)
	assert.False(t, called, "missing credential must not reach upstream")
}

func TestCompanyData_GetFinancials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/stock/metric", r.URL.Path)
		assert.Equal(t, "all", r.URL.Query().Get("metric"))
		fmt.Fprint(w, `{"metric":{
			"peBasicExclExtraTTM":31.2,
			"epsBasicExclExtraItemsTTM":6.13,
			"beta":1.29,
			"dividendYieldIndicatedAnnual":0.55,
			"52WeekHighDate":"2026-01-15"}}`)
	}))
	defer srv.Close()

	fin, err := newClient(srv, "test-token").GetFinancials(context.Background(), "AAPL")
	require.NoError(t, err)

	require.NotNil(t, fin.PERatio)
	assert.Equal(t, 31.2, *fin.PERatio)
	require.NotNil(t, fin.EPS)
	assert.Equal(t, 6.13, *fin.EPS)
	require.NotNil(t, fin.Beta)
	assert.Equal(t, 1.29, *fin.Beta)
	require.NotNil(t, fin.DividendYield)
	assert.Equal(t, 0.55, *fin.DividendYield)
}

func TestCompanyData_GetFinancials_MissingMetrics(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"metric":{"beta":1.1}}`)
	}))
	defer srv.Close()

	fin, err := newClient(srv, "test-token").GetFinancials(context.Background(), "AAPL")
	require.NoError(t, err)

	assert.Nil(t, fin.PERatio, "absent metric stays nil, never zero-filled")
	assert.Nil(t, fin.EPS)
	require.NotNil(t, fin.Beta)
	assert.Equal(t, 1.1, *fin.Beta)
}

func TestCompanyData_GetCompanyNews(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/company-news", r.URL.Path)
		assert.NotEmpty(t, r.URL.Query().Get("from"))
		assert.NotEmpty(t, r.URL.Query().Get("to"))
		fmt.Fprint(w, `[
			{"headline":"Earnings beat","summary":"Strong quarter","url":"https://example.com/1",
			 "source":"Reuters","datetime":1708300800,"image":""},
			{"headline":"Product launch","summary":"","url":"https://example.com/2",
			 "source":"","datetime":1708214400,"image":"https://img.example.com/2"}
		]`)
	}))
	defer srv.Close()

	news, err := newClient(srv, "test-token").GetCompanyNews(context.Background(), "AAPL")
	require.NoError(t, err)

	require.Len(t, news, 2)
	assert.Equal(t, "Earnings beat", news[0].Headline)
	assert.Equal(t, int64(1708300800), news[0].Datetime)
	assert.Equal(t, "Unknown", news[1].Source, "empty source name falls back")
}

func TestCompanyData_GetCompanyNews_CapsAtFifty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "[")
		for i := 0; i < 80; i++ {
			if i > 0 {
				fmt.Fprint(w, ",")
			}
			fmt.Fprintf(w, `{"headline":"h%d","url":"https://example.com/%d","source":"S","datetime":%d}`, i, i, 1708300800+i)
		}
		fmt.Fprint(w, "]")
	}))
	defer srv.Close()

	news, err := newClient(srv, "test-token").GetCompanyNews(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Len(t, news, 50)
}
