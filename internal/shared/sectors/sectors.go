// Package sectors holds the sector reference table and the keyword classifier.
//
// The table is the single source of truth for sector ids, keywords and ticker
// baskets: both the classifier and the keyword-news query builder read from
// it, so the two can never drift apart.
package sectors

import "strings"

// Sector is one domain grouping used to classify and filter news and to
// select ticker baskets. The table is read-only at runtime.
type Sector struct {
	ID        string
	Label     string
	ETFSymbol string
	Keywords  []string
	Tickers   []string
}

var table = []Sector{
	{ID: "technology", Label: "Technology", ETFSymbol: "XLK", Keywords: []string{"AI", "semiconductor", "software", "cloud", "tech stocks"}, Tickers: []string{"AAPL", "MSFT", "NVDA", "GOOG", "META"}},
	{ID: "oil-gas", Label: "Oil & Gas", ETFSymbol: "XLE", Keywords: []string{"crude oil", "natural gas", "OPEC", "refinery", "energy stocks", "Brent"}, Tickers: []string{"XOM", "CVX", "OXY", "BP", "SLB"}},
	{ID: "automotive", Label: "Automotive", ETFSymbol: "CARZ", Keywords: []string{"EV", "electric vehicle", "auto sales", "car manufacturer", "recall"}, Tickers: []string{"TSLA", "GM", "F", "RIVN", "TM"}},
	{ID: "finance", Label: "Finance / Banking", ETFSymbol: "XLF", Keywords: []string{"Fed rate", "interest rate", "bank earnings", "mortgage", "fintech"}, Tickers: []string{"JPM", "BAC", "GS", "WFC", "V"}},
	{ID: "healthcare", Label: "Healthcare / Pharma", ETFSymbol: "XLV", Keywords: []string{"FDA approval", "drug trial", "healthcare earnings", "biotech"}, Tickers: []string{"JNJ", "PFE", "UNH", "MRNA", "ABBV"}},
	{ID: "real-estate", Label: "Real Estate", ETFSymbol: "XLRE", Keywords: []string{"housing market", "REIT", "mortgage rate", "home sales", "construction"}, Tickers: []string{"AMT", "PLD", "SPG", "EQIX"}},
	{ID: "crypto", Label: "Crypto / Web3", ETFSymbol: "BITO", Keywords: []string{"bitcoin", "ethereum", "crypto regulation", "DeFi", "blockchain"}, Tickers: []string{"BTC", "ETH", "BNB", "SOL"}},
	{ID: "commodities", Label: "Commodities", ETFSymbol: "GLD", Keywords: []string{"gold", "silver", "wheat", "corn", "commodity futures", "inflation hedge"}, Tickers: []string{"GLD", "SLV", "WEAT", "USO"}},
	{ID: "retail", Label: "Retail / Consumer", ETFSymbol: "XLY", Keywords: []string{"consumer spending", "retail earnings", "e-commerce", "inflation"}, Tickers: []string{"AMZN", "WMT", "TGT", "COST"}},
	{ID: "aerospace", Label: "Aerospace / Defense", ETFSymbol: "XAR", Keywords: []string{"defense contract", "military budget", "satellite", "aerospace earnings"}, Tickers: []string{"LMT", "RTX", "NOC", "BA"}},
}

// All returns the full sector table in canonical order.
func All() []Sector {
	return table
}

// Match returns the ids of every sector whose keyword list has a
// case-insensitive substring match in text. A text may match zero, one or
// many sectors; no match yields an empty result, not an error.
func Match(text string) []string {
	lower := strings.ToLower(text)
	matched := make([]string, 0, 2)

	for _, s := range table {
		for _, kw := range s.Keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				matched = append(matched, s.ID)
				break
			}
		}
	}
	return matched
}

// KeywordsFor flattens the keyword lists of the given sector ids, preserving
// table order. Unknown ids are ignored.
func KeywordsFor(ids []string) []string {
	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}

	var keywords []string
	for _, s := range table {
		if _, ok := want[s.ID]; ok {
			keywords = append(keywords, s.Keywords...)
		}
	}
	return keywords
}
