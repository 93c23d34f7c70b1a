// Package usecase implements the business logic for the quote feature.
package usecase

import "errors"

var (
	// ErrInvalidTicker is returned when the market-data provider cannot
	// resolve the requested symbol at all. It is distinct from a valid
	// ticker with missing fields, which is handled by default substitution.
	ErrInvalidTicker = errors.New("ticker could not be resolved")
)
