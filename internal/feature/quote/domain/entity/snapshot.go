// Package entity defines the domain models for the quote feature.
package entity

// InfoRecord is the sparse key-value record returned by the market-data
// provider for one ticker. Keys follow the provider's naming (e.g.
// "longName", "forwardPE"); values are whatever the JSON decoder produced.
type InfoRecord map[string]any

// Snapshot is the normalized set of financial metrics for one lookup.
// Numeric fields are zero-defaulted, string fields default to "N/A".
// A Snapshot is built fresh per lookup and never mutated afterwards.
type Snapshot struct {
	Ticker         string
	LongName       string
	Industry       string
	ForwardPE      float64
	EarningsGrowth float64 // percentage, provider returns a fraction
	ProfitMargins  float64 // percentage, provider returns a fraction
	MarketCap      float64
	BookValue      float64
	PriceToBook    float64
	QuickRatio     float64
	CurrentRatio   float64
	FreeCashflow   float64
}
