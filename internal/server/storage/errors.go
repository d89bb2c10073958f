package storage

import "errors"

// Common storage errors
var (
	// ErrAccountNotFound indicates that the account was not found in storage
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountExists indicates that an account with this username already exists
	ErrAccountExists = errors.New("account already exists")

	// ErrSessionNotFound indicates that the session was not found or has expired
	ErrSessionNotFound = errors.New("session not found")
)
