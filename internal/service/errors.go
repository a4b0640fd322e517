package service

import "errors"

var (
	// ErrDuplicateEmail rejects a signup whose email is already taken.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials is returned for both an unknown email and a
	// wrong password so a caller cannot probe which accounts exist.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthorized guards operations that need an authenticated account.
	ErrUnauthorized = errors.New("unauthorized")

	ErrNotFound = errors.New("not found")
)
