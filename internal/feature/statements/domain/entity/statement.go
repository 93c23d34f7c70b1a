// Package entity defines the domain models for the statements feature.
package entity

// Period is one reporting period of a financial statement: the period end
// date plus the line items the provider reported for it. Line items are keyed
// by the provider's field name (e.g. "totalRevenue"); absent items are simply
// missing from the map.
type Period struct {
	EndDate string
	Items   map[string]float64
}

// Statement is one financial statement (income statement, balance sheet or
// cash flow) as a sequence of reporting periods, most recent first.
type Statement struct {
	Name    string
	Periods []Period
}

// Statements groups the three statements fetched for one ticker.
type Statements struct {
	Ticker       string
	Income       Statement
	BalanceSheet Statement
	CashFlow     Statement
}
