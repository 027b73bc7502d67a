// Package dto defines the HTTP wire format for the quotes feature.
package dto

import (
	"time"

	"market_dashboard/internal/feature/quotes/domain/entity"
)

// QuotesResponse is the envelope for GET /api/quotes.
type QuotesResponse struct {
	Quotes    []entity.Quote `json:"quotes"`
	FetchedAt time.Time      `json:"fetchedAt"`
}

// NewQuotesResponse wraps the quotes, substituting an empty slice for nil so
// the JSON field is always an array.
func NewQuotesResponse(quotes []entity.Quote) QuotesResponse {
	if quotes == nil {
		quotes = []entity.Quote{}
	}
	return QuotesResponse{Quotes: quotes, FetchedAt: time.Now().UTC()}
}
