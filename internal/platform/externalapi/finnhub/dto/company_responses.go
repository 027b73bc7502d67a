// Package dto mirrors the Finnhub API response shapes.
package dto

// ProfileResponse is the /stock/profile2 payload.
type ProfileResponse struct {
	Name                 string  `json:"name"`
	Logo                 string  `json:"logo"`
	FinnhubIndustry      string  `json:"finnhubIndustry"`
	Country              string  `json:"country"`
	WebURL               string  `json:"weburl"`
	MarketCapitalization float64 `json:"marketCapitalization"`
}

// MetricResponse is the /stock/metric payload. Only the flat metric map is
// consumed; series blocks are ignored. Values are left untyped because the
// provider mixes numbers and strings in the same map.
type MetricResponse struct {
	Metric map[string]any `json:"metric"`
}

// CompanyNewsItem is one element of the /company-news payload.
type CompanyNewsItem struct {
	Headline string `json:"headline"`
	Summary  string `json:"summary"`
	URL      string `json:"url"`
	Source   string `json:"source"`
	Datetime int64  `json:"datetime"`
	Image    string `json:"image"`
}
