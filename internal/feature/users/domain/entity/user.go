// Package entity defines the domain entities for the users feature.
package entity

import "time"

// User represents a registered account in the system.
// It contains authentication credentials and metadata for profile management.
type User struct {
	// ID is the unique identifier for the user, generated server-side.
	ID string `gorm:"primaryKey;size:36"`

	// Username is the login name of the user.
	// It must be unique across all users.
	Username string `gorm:"uniqueIndex;size:255;not null"`

	// Email is the user's contact email address.
	Email string `gorm:"size:255"`

	// PasswordHash is the bcrypt hash of the user's password.
	// This should never store plaintext passwords and is never serialized.
	PasswordHash string `gorm:"size:255;not null"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
