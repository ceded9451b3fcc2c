// Package store holds the authenticated session: the access token attached to
// every API call and the refresh token used to mint a new one.
//
// A Store either holds both tokens or none. The in-memory implementation is
// sufficient for tests and short-lived processes; FileStore, RedisStore and
// SecretStore persist the session across restarts.
package store
