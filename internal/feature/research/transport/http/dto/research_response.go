// Package dto defines the HTTP wire format for the research feature.
package dto

import (
	"time"

	"market_dashboard/internal/feature/research/domain/entity"
)

// ResearchResponse is the envelope for GET /api/research. The bundle facets
// are flattened into the envelope; absent facets serialize as null.
type ResearchResponse struct {
	Overview     *entity.StockOverview       `json:"overview"`
	Profile      *entity.CompanyProfile      `json:"profile"`
	Financials   *entity.CompanyFinancials   `json:"financials"`
	Fundamentals *entity.FundamentalData     `json:"fundamentals"`
	News         []entity.CompanyNewsArticle `json:"news"`
	FetchedAt    time.Time                   `json:"fetchedAt"`
}

// NewResearchResponse flattens the bundle into the response envelope.
func NewResearchResponse(b *entity.Bundle) ResearchResponse {
	resp := ResearchResponse{News: []entity.CompanyNewsArticle{}, FetchedAt: time.Now().UTC()}
	if b == nil {
		return resp
	}
	resp.Overview = b.Overview
	resp.Profile = b.Profile
	resp.Financials = b.Financials
	resp.Fundamentals = b.Fundamentals
	if b.News != nil {
		resp.News = b.News
	}
	return resp
}
