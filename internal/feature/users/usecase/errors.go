// Package usecase implements the business logic for the users feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by ID or username.
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameTaken is returned when attempting to create a user with a username that already exists.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrInvalidCredentials is returned on login when the username or password is wrong.
	// It deliberately covers both cases so callers cannot probe which usernames exist.
	ErrInvalidCredentials = errors.New("invalid username or password")
)
