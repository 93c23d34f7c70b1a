// Package dto defines data transfer objects for the history feature's HTTP transport layer.
package dto

// HistoryItem is one stored lookup in the /history response.
// FreeCashflow is pre-formatted for display ("$1,234.56" or "N/A").
type HistoryItem struct {
	Ticker         string  `json:"ticker"`
	LongName       string  `json:"longName"`
	Industry       string  `json:"industry"`
	ForwardPE      float64 `json:"forwardPE"`
	EarningsGrowth float64 `json:"earningsGrowth"`
	ProfitMargins  float64 `json:"profitMargins"`
	MarketCap      float64 `json:"marketCap"`
	BookValue      float64 `json:"bookValue"`
	PriceToBook    float64 `json:"priceToBook"`
	QuickRatio     float64 `json:"quickRatio"`
	CurrentRatio   float64 `json:"currentRatio"`
	FreeCashflow   string  `json:"freeCashflow"`
}
