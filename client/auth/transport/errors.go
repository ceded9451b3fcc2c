package transport

import "errors"

var (
	// ErrSessionExpired signals a terminal authentication failure; the session
	// has been cleared and the user has to log in again.
	ErrSessionExpired = errors.New("session expired")
	// ErrRefreshRejected is returned when the backend refuses the refresh token.
	ErrRefreshRejected = errors.New("refresh token rejected")
	// ErrNoRefreshToken is returned when no session is stored.
	ErrNoRefreshToken = errors.New("no refresh token")

	errRetryUnauthorized = errors.New("refreshed access token rejected")
)
