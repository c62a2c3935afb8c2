package middleware

import "errors"

// Sentinel auth failures. Kept distinct for logs and tests; the HTTP error
// handler maps both to the same 401 response body.
var (
	ErrMissingToken = errors.New("missing token")
	ErrInvalidToken = errors.New("invalid token")
)
