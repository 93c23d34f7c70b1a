// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by username or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameAlreadyExists is returned when attempting to register a
	// username that is already taken.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrWeakPassword is returned when a password does not satisfy the
	// policy (minimum length, at least one letter and one digit).
	ErrWeakPassword = errors.New("password must be at least 6 characters and contain a letter and a digit")

	// ErrPasswordMismatch is returned when the confirmation password does
	// not match the password at registration.
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrInvalidCredentials is returned when the username or password is
	// incorrect. It is deliberately generic to avoid user enumeration.
	ErrInvalidCredentials = errors.New("invalid username or password")
)
