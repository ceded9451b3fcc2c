// Package transport implements the authenticated request gateway: an
// http.RoundTripper that attaches the stored access token to every request
// and, when the API answers `401 Unauthorized`, refreshes the access token once
// and replays the request.
//
// When the refresh token is missing or rejected, or the replayed request is
// rejected again, the session store is cleared and the call fails with
// ErrSessionExpired so that the caller can ask the user to log in again.
package transport
