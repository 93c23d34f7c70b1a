// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered account.
// Usernames are stored lowercase so uniqueness is case-insensitive.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Username is the login name, lowercased at registration.
	// It must be unique across all users and never changes after creation.
	Username string `gorm:"uniqueIndex;size:255;not null"`

	// PasswordHash is the bcrypt hash of the user's password.
	// Plaintext passwords are never stored.
	PasswordHash string `gorm:"size:255;not null"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time
}

// TableName returns the table name for GORM.
func (User) TableName() string {
	return "users"
}
