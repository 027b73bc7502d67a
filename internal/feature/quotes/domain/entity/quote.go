// Package entity defines the domain model for the quotes feature.
package entity

// Quote is the latest price snapshot for a single ticker. Symbols whose
// provider returned no usable price are simply omitted from a result set,
// never null-filled.
type Quote struct {
	Symbol        string  `json:"symbol"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
	Name          string  `json:"name,omitempty"`
	DayHigh       float64 `json:"dayHigh,omitempty"`
	DayLow        float64 `json:"dayLow,omitempty"`
}
