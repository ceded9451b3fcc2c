// Package cli implements the edulearn command line interface.
//
// Settings come from the environment (optionally a .env file) and can be
// overridden with flags. The session is persisted in the configured store so
// that consecutive invocations share it; a rejected refresh ends the session
// and the command reports that a new login is required.
package cli
