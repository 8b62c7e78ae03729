package auth

import "errors"

var (
	// ErrInvalidCredentials is returned on unknown email or wrong password
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotAuthorized is returned when the user is not on the admins
	// allow-list, regardless of credential validity
	ErrNotAuthorized = errors.New("user is not authorized for admin access")

	// ErrSessionInvalid is returned when the session token is unknown or expired
	ErrSessionInvalid = errors.New("session is invalid or expired")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("auth service: internal error")
)
