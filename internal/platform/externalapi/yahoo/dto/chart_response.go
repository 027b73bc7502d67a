// Package dto mirrors the Yahoo Finance chart API response shape.
package dto

// ChartResponse is the top-level payload of /v8/finance/chart/{symbol}.
type ChartResponse struct {
	Chart struct {
		Result []ChartResult `json:"result"`
		Error  *ChartError   `json:"error"`
	} `json:"chart"`
}

// ChartError is the provider-side error envelope.
type ChartError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// ChartResult carries the meta block plus the time series arrays.
type ChartResult struct {
	Meta       ChartMeta `json:"meta"`
	Timestamp  []int64   `json:"timestamp"`
	Indicators struct {
		Quote []struct {
			Close []*float64 `json:"close"`
		} `json:"quote"`
	} `json:"indicators"`
}

// ChartMeta holds the quote snapshot. Price fields are pointers so a missing
// price can be told apart from an actual zero.
type ChartMeta struct {
	Symbol               string   `json:"symbol"`
	ShortName            string   `json:"shortName"`
	LongName             string   `json:"longName"`
	RegularMarketPrice   *float64 `json:"regularMarketPrice"`
	ChartPreviousClose   *float64 `json:"chartPreviousClose"`
	RegularMarketDayHigh float64  `json:"regularMarketDayHigh"`
	RegularMarketDayLow  float64  `json:"regularMarketDayLow"`
	FiftyTwoWeekHigh     float64  `json:"fiftyTwoWeekHigh"`
	FiftyTwoWeekLow      float64  `json:"fiftyTwoWeekLow"`
	RegularMarketVolume  int64    `json:"regularMarketVolume"`
}
