// Package auth manages the EduLearn session lifecycle.
//
// An Authenticator logs a user in with the password flow and persists the
// returned token pair in a store.Store. Subsequent API calls go through the
// transport.RoundTripper, which attaches and rotates the access token using the
// same store. Logging out, or a refresh rejected by the backend, clears the
// store.
package auth
