// Package dto defines data transfer objects for the search feature's HTTP transport layer.
package dto

// LookupReq represents the request body for the /lookup endpoint.
type LookupReq struct {
	Ticker string `json:"ticker" binding:"required"`
}

// UpdateReq represents the request body for the /update endpoint.
type UpdateReq struct {
	Ticker string `json:"ticker" binding:"required"`
}
