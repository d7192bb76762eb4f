package model

// ChartPoint is one date's aggregated, plot-ready category averages.
// A nil value means no product contributed a sample for that category on
// that date; absent is distinct from zero.
type ChartPoint struct {
	Date string   `json:"date"` // truncated display label, MM-DD
	DDR5 *float64 `json:"ddr5,omitempty"`
	DDR4 *float64 `json:"ddr4,omitempty"`
	HBM  *float64 `json:"hbm,omitempty"`
}

// TickerEntry is one product condensed for the marquee strip.
type TickerEntry struct {
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Change24h float64 `json:"change_24h"`
}

// NewsItem is one static entry for the news/community sidebar.
type NewsItem struct {
	Title  string `json:"title"`
	Source string `json:"source"`
	URL    string `json:"url,omitempty"`
}
