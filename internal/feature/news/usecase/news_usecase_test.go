package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"market_dashboard/internal/feature/news/domain/entity"
	"market_dashboard/internal/platform/cache"
)

type mockFeedRepo struct {
	fetchFunc func(ctx context.Context) ([]entity.Article, error)
	calls     atomic.Int64
}

func (m *mockFeedRepo) FetchArticles(ctx context.Context) ([]entity.Article, error) {
	m.calls.Add(1)
	return m.fetchFunc(ctx)
}

type mockSearchRepo struct {
	searchFunc func(ctx context.Context, sectorIDs []string) ([]entity.Article, error)
	calls      atomic.Int64
}

func (m *mockSearchRepo) Search(ctx context.Context, sectorIDs []string) ([]entity.Article, error) {
	m.calls.Add(1)
	return m.searchFunc(ctx, sectorIDs)
}

func article(title, url string, published time.Time, sectorIDs ...string) entity.Article {
	return entity.Article{
		Title:       title,
		URL:         url,
		Source:      "Test",
		PublishedAt: published,
		SectorIDs:   sectorIDs,
	}
}

func newNewsUsecase(feed *mockFeedRepo, search *mockSearchRepo) *NewsUsecase {
	return NewNewsUsecase(feed, search, cache.New[[]entity.Article](CacheTTL))
}

func TestGetNews_MergesAndSortsNewestFirst(t *testing.T) {
	base := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	feed := &mockFeedRepo{fetchFunc: func(ctx context.Context) ([]entity.Article, error) {
		return []entity.Article{
			article("older", "https://a.test/1", base.Add(-time.Hour), "technology"),
			article("newest", "https://a.test/2", base.Add(time.Hour), "technology"),
		}, nil
	}}
	search := &mockSearchRepo{searchFunc: func(ctx context.Context, sectorIDs []string) ([]entity.Article, error) {
		return []entity.Article{
			article("middle", "https://b.test/1", base, "technology"),
		}, nil
	}}
	u := newNewsUsecase(feed, search)

	got, err := u.GetNews(context.Background(), []string{"technology"})

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "newest", got[0].Title)
	assert.Equal(t, "middle", got[1].Title)
	assert.Equal(t, "older", got[2].Title)
}

func TestGetNews_DedupByURLFeedSourceWins(t *testing.T) {
	// Same URL from both sources: the feed-pull version must survive even
	// though the keyword-search version carries a newer timestamp.
	at1000 := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	feed := &mockFeedRepo{fetchFunc: func(ctx context.Context) ([]entity.Article, error) {
		return []entity.Article{
			article("a from feed", "https://dup.test/a", at1000, "finance"),
			article("b", "https://dup.test/b", at1000.Add(-time.Hour), "finance"),
		}, nil
	}}
	search := &mockSearchRepo{searchFunc: func(ctx context.Context, sectorIDs []string) ([]entity.Article, error) {
		return []entity.Article{
			article("a from search", "https://dup.test/a", at1000.Add(5*time.Minute), "finance"),
		}, nil
	}}
	u := newNewsUsecase(feed, search)

	got, err := u.GetNews(context.Background(), []string{"finance"})

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a from feed", got[0].Title)
	assert.Equal(t, "b", got[1].Title)
}

func TestGetNews_FiltersBySector(t *testing.T) {
	now := time.Now()
	feed := &mockFeedRepo{fetchFunc: func(ctx context.Context) ([]entity.Article, error) {
		return []entity.Article{
			article("tech", "https://a.test/1", now, "technology"),
			article("energy", "https://a.test/2", now, "oil-gas"),
			article("unclassified", "https://a.test/3", now),
		}, nil
	}}
	search := &mockSearchRepo{searchFunc: func(ctx context.Context, sectorIDs []string) ([]entity.Article, error) {
		return nil, nil
	}}
	u := newNewsUsecase(feed, search)

	got, err := u.GetNews(context.Background(), []string{"technology"})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "tech", got[0].Title)
}

func TestGetNews_NoSectorsSkipsKeywordSearch(t *testing.T) {
	feed := &mockFeedRepo{fetchFunc: func(ctx context.Context) ([]entity.Article, error) {
		return []entity.Article{
			article("tech", "https://a.test/1", time.Now(), "technology"),
			article("unclassified", "https://a.test/2", time.Now()),
		}, nil
	}}
	search := &mockSearchRepo{searchFunc: func(ctx context.Context, sectorIDs []string) ([]entity.Article, error) {
		return []entity.Article{article("kw", "https://b.test/1", time.Now())}, nil
	}}
	u := newNewsUsecase(feed, search)

	got, err := u.GetNews(context.Background(), nil)

	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, int64(0), search.calls.Load())
}

func TestGetNews_FailedSourceDegradesToEmpty(t *testing.T) {
	feed := &mockFeedRepo{fetchFunc: func(ctx context.Context) ([]entity.Article, error) {
		return nil, errors.New("feed down")
	}}
	search := &mockSearchRepo{searchFunc: func(ctx context.Context, sectorIDs []string) ([]entity.Article, error) {
		return []entity.Article{article("kw", "https://b.test/1", time.Now(), "crypto")}, nil
	}}
	u := newNewsUsecase(feed, search)

	got, err := u.GetNews(context.Background(), []string{"crypto"})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "kw", got[0].Title)
}

func TestGetNews_BothSourcesDownReturnsEmpty(t *testing.T) {
	feed := &mockFeedRepo{fetchFunc: func(ctx context.Context) ([]entity.Article, error) {
		return nil, errors.New("feed down")
	}}
	search := &mockSearchRepo{searchFunc: func(ctx context.Context, sectorIDs []string) ([]entity.Article, error) {
		return nil, errors.New("search down")
	}}
	u := newNewsUsecase(feed, search)

	got, err := u.GetNews(context.Background(), []string{"crypto"})

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGetNews_CacheKeyIgnoresSectorOrder(t *testing.T) {
	feed := &mockFeedRepo{fetchFunc: func(ctx context.Context) ([]entity.Article, error) {
		return []entity.Article{article("tech", "https://a.test/1", time.Now(), "technology", "finance")}, nil
	}}
	search := &mockSearchRepo{searchFunc: func(ctx context.Context, sectorIDs []string) ([]entity.Article, error) {
		return nil, nil
	}}
	u := newNewsUsecase(feed, search)

	_, err := u.GetNews(context.Background(), []string{"technology", "finance"})
	require.NoError(t, err)
	_, err = u.GetNews(context.Background(), []string{"finance", "technology"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), feed.calls.Load())
}

func TestGetNews_SecondCallWithinTTLServedFromCache(t *testing.T) {
	feed := &mockFeedRepo{fetchFunc: func(ctx context.Context) ([]entity.Article, error) {
		return []entity.Article{article("tech", "https://a.test/1", time.Now(), "technology")}, nil
	}}
	search := &mockSearchRepo{searchFunc: func(ctx context.Context, sectorIDs []string) ([]entity.Article, error) {
		return nil, nil
	}}
	u := newNewsUsecase(feed, search)

	first, err := u.GetNews(context.Background(), []string{"technology"})
	require.NoError(t, err)
	second, err := u.GetNews(context.Background(), []string{"technology"})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int64(1), feed.calls.Load())
	assert.Equal(t, int64(1), search.calls.Load())
}
