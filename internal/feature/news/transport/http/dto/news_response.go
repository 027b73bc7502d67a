// Package dto defines the HTTP wire format for the news feature.
package dto

import (
	"time"

	"market_dashboard/internal/feature/news/domain/entity"
)

// NewsResponse is the envelope for GET /api/news. FetchedAt is the serve
// time, not the fetch time of a cached result.
type NewsResponse struct {
	Articles  []entity.Article `json:"articles"`
	FetchedAt time.Time        `json:"fetchedAt"`
}

// NewNewsResponse wraps the articles, substituting an empty slice for nil so
// the JSON field is always an array.
func NewNewsResponse(articles []entity.Article) NewsResponse {
	if articles == nil {
		articles = []entity.Article{}
	}
	return NewsResponse{Articles: articles, FetchedAt: time.Now().UTC()}
}
