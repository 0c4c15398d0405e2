package account

import "errors"

var (
	// ErrAccountNotFound is returned when no account matches the given email.
	ErrAccountNotFound = errors.New("account not found")

	// ErrInvalidCredentials is returned when the password does not match.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrLinkExpired is returned when a registration/reset link is unknown or
	// past its window. Both cases map to the same error so callers can not
	// probe which accounts exist.
	ErrLinkExpired = errors.New("link is invalid or has expired")

	// ErrEmailRequired is returned when a required email field is missing.
	ErrEmailRequired = errors.New("email is required")

	// ErrFullNameRequired is returned when the required full name is missing.
	ErrFullNameRequired = errors.New("full name is required")
)
