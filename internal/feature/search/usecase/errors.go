// Package usecase implements the business logic for the search feature.
package usecase

import "errors"

var (
	// ErrNotAuthenticated is returned when a persistence operation is
	// attempted without an authenticated user. The history store is not
	// touched in that case.
	ErrNotAuthenticated = errors.New("authentication required")

	// ErrNoLastTicker is returned by PersistLast when the session has no
	// remembered ticker to persist.
	ErrNoLastTicker = errors.New("no ticker has been looked up in this session")

	// ErrSessionNotFound is returned when a session cannot be found by ID.
	ErrSessionNotFound = errors.New("session not found")
)
