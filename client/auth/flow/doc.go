// Package flow implements the EduLearn password flow: exchanging credentials
// for an access/refresh token pair, registering an account and verifying a
// token. Calls are made with a plain HTTP client, never through the
// authenticated gateway.
package flow
