package model

import "errors"

var (
	ErrUserNotFound = errors.New("user doesn't exist")

	// ErrUserExists covers both unique columns; the store does not reveal
	// which one collided.
	ErrUserExists = errors.New("email or username already taken")

	// ErrInvalidCredentials deliberately reads as not-found so a failed
	// login does not confirm that the email is registered.
	ErrInvalidCredentials = errors.New("user with provided credentials doesn't exist")
)
