// Package mock implements an in-memory EduLearn backend for tests and local
// development.
//
// The service issues short-lived HS256 access tokens and opaque refresh tokens
// the way the real backend does, and serves a small seeded course catalog.
// ExpireAccessTokens and RevokeRefreshTokens let tests force the refresh and
// the terminal expiry paths of the client gateway.
package mock
