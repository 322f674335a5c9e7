// Package entity defines the domain entities for the todos feature.
package entity

import "time"

// Todo represents a single task owned by exactly one user.
type Todo struct {
	// ID is the unique identifier for the todo, generated server-side.
	ID string `gorm:"primaryKey;size:36"`

	// UserID is the ID of the owning user. It is immutable after creation and
	// every read/write path is scoped by it.
	UserID string `gorm:"index;size:36;not null"`

	// Description is the free-form task text.
	Description string `gorm:"size:1024;not null"`

	// Status is a free-form state string. New todos default to "pending".
	Status string `gorm:"size:64;not null"`

	// CreatedAt is the timestamp when the todo was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the todo was last updated.
	UpdatedAt time.Time
}

// DefaultStatus is the status assigned to newly created todos when none is given.
const DefaultStatus = "pending"
