package admin

import "errors"

var (
	// ErrMissingCredentials means username or password was empty.
	ErrMissingCredentials = errors.New("username and password are required")

	// ErrInvalidCredentials is the single generic failure for any non-match.
	// It deliberately does not distinguish an unknown username from a wrong
	// password.
	ErrInvalidCredentials = errors.New("invalid username or password")
)
