// Package dto defines data transfer objects for the Yahoo Finance API responses.
package dto

// APIError represents the error object embedded in Yahoo Finance responses.
type APIError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// QuoteSummaryResponse represents the JSON envelope of the quoteSummary
// endpoint. Each result entry maps a module name (e.g. "summaryProfile")
// to that module's fields; field values are either scalars or
// {"raw": ..., "fmt": ...} objects, so they are decoded loosely.
type QuoteSummaryResponse struct {
	QuoteSummary struct {
		Result []map[string]map[string]any `json:"result"`
		Error  *APIError                   `json:"error"`
	} `json:"quoteSummary"`
}
