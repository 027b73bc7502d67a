// Package entity defines the domain model for the research feature.
package entity

// StockOverview is the price/chart facet of a research bundle, built from the
// chart provider.
type StockOverview struct {
	Symbol           string    `json:"symbol"`
	Name             string    `json:"name,omitempty"`
	Price            float64   `json:"price"`
	Change           float64   `json:"change"`
	ChangePercent    float64   `json:"changePercent"`
	DayHigh          float64   `json:"dayHigh,omitempty"`
	DayLow           float64   `json:"dayLow,omitempty"`
	FiftyTwoWeekHigh float64   `json:"fiftyTwoWeekHigh,omitempty"`
	FiftyTwoWeekLow  float64   `json:"fiftyTwoWeekLow,omitempty"`
	MarketCap        float64   `json:"marketCap,omitempty"`
	Volume           int64     `json:"volume,omitempty"`
	ChartData        []float64 `json:"chartData"`
	ChartDates       []string  `json:"chartDates"`
}

// CompanyProfile is the identity facet. MarketCapitalization is expressed in
// millions of currency units, as delivered by the profile provider.
type CompanyProfile struct {
	Name                 string  `json:"name"`
	Logo                 string  `json:"logo,omitempty"`
	Industry             string  `json:"industry,omitempty"`
	Country              string  `json:"country,omitempty"`
	WebURL               string  `json:"weburl,omitempty"`
	MarketCapitalization float64 `json:"marketCapitalization,omitempty"`
}

// CompanyFinancials is the ratio facet. Fields the provider did not report
// are nil.
type CompanyFinancials struct {
	PERatio       *float64 `json:"peRatio"`
	EPS           *float64 `json:"eps"`
	Beta          *float64 `json:"beta"`
	DividendYield *float64 `json:"dividendYield"`
}

// CompanyNewsArticle is one recent company-specific headline.
type CompanyNewsArticle struct {
	Headline string `json:"headline"`
	Summary  string `json:"summary"`
	URL      string `json:"url"`
	Source   string `json:"source"`
	Datetime int64  `json:"datetime"`
	Image    string `json:"image,omitempty"`
}

// FundamentalData is the valuation/profitability/growth/analyst facet.
// Every field is independently nullable: the fundamentals provider reports
// metrics as strings and uses "None"/"-" for absent values.
type FundamentalData struct {
	PEGRatio                *float64 `json:"pegRatio"`
	ForwardPE               *float64 `json:"forwardPE"`
	PriceToBook             *float64 `json:"priceToBook"`
	PriceToSales            *float64 `json:"priceToSales"`
	EVToRevenue             *float64 `json:"evToRevenue"`
	EVToEBITDA              *float64 `json:"evToEbitda"`
	ProfitMargin            *float64 `json:"profitMargin"`
	OperatingMargin         *float64 `json:"operatingMargin"`
	ReturnOnEquity          *float64 `json:"returnOnEquity"`
	ReturnOnAssets          *float64 `json:"returnOnAssets"`
	QuarterlyRevenueGrowth  *float64 `json:"quarterlyRevenueGrowth"`
	QuarterlyEarningsGrowth *float64 `json:"quarterlyEarningsGrowth"`
	AnalystTargetPrice      *float64 `json:"analystTargetPrice"`
	AnalystStrongBuy        *float64 `json:"analystStrongBuy"`
	AnalystBuy              *float64 `json:"analystBuy"`
	AnalystHold             *float64 `json:"analystHold"`
	AnalystSell             *float64 `json:"analystSell"`
	AnalystStrongSell       *float64 `json:"analystStrongSell"`
}

// Bundle is the multi-facet research record. Each facet is independently
// nullable; one facet's absence never affects another's presence.
type Bundle struct {
	Overview     *StockOverview       `json:"overview"`
	Profile      *CompanyProfile      `json:"profile"`
	Financials   *CompanyFinancials   `json:"financials"`
	Fundamentals *FundamentalData     `json:"fundamentals"`
	News         []CompanyNewsArticle `json:"news"`
}
