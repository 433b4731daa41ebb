package auth

import "errors"

// Sentinel errors carry the literal messages of the documented contract; the
// HTTP boundary serializes them verbatim.
var (
	ErrMissingFields      = errors.New("username and password required")
	ErrUsernameTaken      = errors.New("username taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("token invalid")
)
