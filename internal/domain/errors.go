package domain

import "errors"

// Sentinel errors for the domain layer. These provide consistent, checkable
// errors for storefront outcomes that callers branch on.
var (
	// ErrLoginFailed is returned when the marketplace answers a login without a token.
	ErrLoginFailed = errors.New("login failed")

	// ErrSignupFailed is returned when the marketplace rejects a signup.
	ErrSignupFailed = errors.New("signup failed")

	// ErrInvalidPrice is returned when a price cannot be read as a number.
	ErrInvalidPrice = errors.New("invalid price")
)
