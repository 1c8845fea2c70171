package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidCredentials indicates the identifier/secret pair matched no credential record.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken indicates a presented token is not the current session token.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrMissingToken indicates a token was expected but not provided
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrDuplicateIdentifier indicates two credential records share an identifier.
	ErrDuplicateIdentifier = errors.New("duplicate credential identifier")
)
