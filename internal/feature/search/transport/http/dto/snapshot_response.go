package dto

import quoteentity "stock_insight/internal/feature/quote/domain/entity"

// SnapshotResponse is the JSON shape of a normalized lookup result.
// Field names mirror the provider's keys so the web client can render
// them without its own mapping table.
type SnapshotResponse struct {
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
	FreeCashflow   float64 `json:"freeCashflow"`
}

// SnapshotResponseFromEntity converts a domain snapshot to its response shape.
func SnapshotResponseFromEntity(s *quoteentity.Snapshot) SnapshotResponse {
	return SnapshotResponse{
		Ticker:         s.Ticker,
		LongName:       s.LongName,
		Industry:       s.Industry,
		ForwardPE:      s.ForwardPE,
		EarningsGrowth: s.EarningsGrowth,
		ProfitMargins:  s.ProfitMargins,
		MarketCap:      s.MarketCap,
		BookValue:      s.BookValue,
		PriceToBook:    s.PriceToBook,
		QuickRatio:     s.QuickRatio,
		CurrentRatio:   s.CurrentRatio,
		FreeCashflow:   s.FreeCashflow,
	}
}
