package models

import "errors"

var (
	// ErrNotFound is returned when a looked-up document does not exist.
	ErrNotFound = errors.New("document not found")

	// ErrInvalidCredentials is returned on any failed login, whether the
	// email is unknown or the password does not match.
	ErrInvalidCredentials = errors.New("incorrect email or password")

	// ErrEmailTaken is returned when registering an email that already
	// resolves to a user.
	ErrEmailTaken = errors.New("an account with this email already exists")
)
