package auth

import "errors"

var (
	// ErrInvalidInput indicates a missing username or password.
	ErrInvalidInput = errors.New("invalid input data")
	// ErrUnauthorized covers bad credentials and bad tokens alike; callers
	// must not learn which half failed.
	ErrUnauthorized = errors.New("unauthorized")
)
